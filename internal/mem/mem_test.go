package mem

import "testing"

func TestSliceForAppend(t *testing.T) {
	t.Run("grow", func(t *testing.T) {
		head, tail := SliceForAppend([]uint64{1, 2}, 3)
		if got, want := len(head), 5; got != want {
			t.Errorf("len(head) = %d, want = %d", got, want)
		}
		if got, want := len(tail), 3; got != want {
			t.Errorf("len(tail) = %d, want = %d", got, want)
		}
		tail[0] = 7
		if got, want := head[2], uint64(7); got != want {
			t.Errorf("head[2] = %d, want = %d", got, want)
		}
	})

	t.Run("no allocation", func(t *testing.T) {
		buf := make([]uint64, 0, 8)
		head, _ := SliceForAppend(buf, 8)
		if &head[0] != &buf[:1][0] {
			t.Error("SliceForAppend allocated despite sufficient capacity")
		}
	})
}
