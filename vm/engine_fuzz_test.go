package vm

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfvm/io"
)

func countAlphabet(source string) (count, loops, ends int) {
	for n := 0; n < len(source); n++ {
		if IsInstruction(source[n]) {
			count++
		}
		switch source[n] {
		case '[':
			loops++
		case ']':
			ends++
		}
	}
	return
}

func FuzzCompile(f *testing.F) {
	for _, seed := range []string{"", "a+b-c", "[", "]", "[[]]", "][", helloWorld} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		count, loops, ends := countAlphabet(source)

		prog, err := Compile(source)
		if loops != ends {
			assert.ErrorIs(err, ErrUnbalancedLoops)
			return
		}

		assert.NoError(err)
		assert.Equal(count, prog.Len())

		// Recompiling the compacted text is idempotent.
		again, err := Compile(prog.String())
		assert.NoError(err)
		assert.Equal(prog.Code, again.Code)
	})
}

func FuzzEngine(f *testing.F) {
	for _, seed := range []string{"++[-]", "++.+.", "+[>+<-]", "][", "+][", "+[[-]]", "<<<>>>", helloWorld} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		output := &bytes.Buffer{}
		eng := NewEngine(&io.Console{Output: output})
		eng.Log = log.New(&bytes.Buffer{}, "", 0)
		eng.Stack.Limit = 64

		err := eng.Load(source)
		if err != nil {
			assert.True(eng.Done())
			return
		}

		for ticks := 0; ticks < 10000 && !eng.Done(); ticks++ {
			ip := eng.Ip
			err = eng.Step()
			assert.GreaterOrEqual(eng.Tape.Head(), 0)
			assert.Less(eng.Tape.Head(), eng.Tape.Len())
			if err != nil {
				known := errors.Is(err, ErrStackEmpty) ||
					errors.Is(err, ErrStackFull) ||
					errors.Is(err, ErrLoopUnmatched)
				assert.True(known, err.Error())
				assert.Equal(ip, eng.Ip)
				assert.ErrorIs(eng.Step(), ErrEngineFaulted)
				return
			}
		}
	})
}
