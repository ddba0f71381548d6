package vm

// Stack of loop entry instruction pointers.
type Stack struct {
	Limit int   // Maximum stack depth, or 0 for no limit.
	Data  []int // Stack contents, top last.
}

// Push a value, returning the new stack depth.
func (s *Stack) Push(value int) (depth int, err error) {
	if s.Full() {
		err = ErrStackFull
		return len(s.Data), err
	}

	s.Data = append(s.Data, value)
	return len(s.Data), nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (value int, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

// Top returns the top value, or 0 if the stack is empty.
func (s *Stack) Top() (value int) {
	value, _ = s.Peek()
	return
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return s.Limit > 0 && len(s.Data) >= s.Limit
}

func (s *Stack) Peek() (value int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
