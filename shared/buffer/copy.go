package buffer

// The methods below are the copy-producing counterparts of the in-place
// mutators. The receiver is left untouched.

func (b *Buffer[T]) Appended(vs ...T) *Buffer[T] {
	out := b.Clone()
	out.Append(vs...)
	return out
}

func (b *Buffer[T]) Prepended(vs ...T) *Buffer[T] {
	out := b.Clone()
	out.Prepend(vs...)
	return out
}

func (b *Buffer[T]) Inserted(i int, vs ...T) (*Buffer[T], error) {
	out := b.Clone()
	if err := out.InsertAt(i, vs...); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer[T]) Removed(i int) (*Buffer[T], error) {
	out := b.Clone()
	if _, err := out.RemoveAt(i); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer[T]) Replaced(i int, v T) (*Buffer[T], error) {
	out := b.Clone()
	if err := out.SetAt(i, v); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Buffer[T]) Swapped(i, j int) (*Buffer[T], error) {
	out := b.Clone()
	if err := out.Swap(i, j); err != nil {
		return nil, err
	}
	return out, nil
}
