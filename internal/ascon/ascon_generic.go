package ascon

import "math/bits"

// The first twelve entries are the p12 schedule. The remaining four are only reached by round counts which start
// before or run past it.
var constants = [16]uint64{ //nolint:gochecknoglobals // round constants
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b, 0x3c, 0x2d, 0x1e, 0x0f,
}

func round(x0, x1, x2, x3, x4 *uint64, c uint64) {
	// Addition of constant
	*x2 ^= c

	// Substitution layer
	s0 := *x0
	s1 := *x1
	s2 := *x2
	s3 := *x3
	s4 := *x4

	s0 ^= s4
	s4 ^= s3
	s2 ^= s1

	t0 := ^s0 & s1
	t1 := ^s1 & s2
	t2 := ^s2 & s3
	t3 := ^s3 & s4
	t4 := ^s4 & s0

	s0 ^= t1
	s1 ^= t2
	s2 ^= t3
	s3 ^= t4
	s4 ^= t0

	s1 ^= s0
	s0 ^= s4
	s3 ^= s2
	s2 = ^s2

	// Linear diffusion layer
	*x0 = s0 ^ bits.RotateLeft64(s0, -19) ^ bits.RotateLeft64(s0, -28)
	*x1 = s1 ^ bits.RotateLeft64(s1, -61) ^ bits.RotateLeft64(s1, -39)
	*x2 = s2 ^ bits.RotateLeft64(s2, -1) ^ bits.RotateLeft64(s2, -6)
	*x3 = s3 ^ bits.RotateLeft64(s3, -10) ^ bits.RotateLeft64(s3, -17)
	*x4 = s4 ^ bits.RotateLeft64(s4, -7) ^ bits.RotateLeft64(s4, -41)
}

// permuteGeneric runs any number of rounds. Round i of n uses constants[12-n+i]; rounds whose index falls outside the
// table add no constant.
func permuteGeneric(s State, rounds int) State {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	for i := range rounds {
		var c uint64
		if j := 12 - rounds + i; j >= 0 && j < len(constants) {
			c = constants[j]
		}
		round(&x0, &x1, &x2, &x3, &x4, c)
	}

	return State{x0, x1, x2, x3, x4}
}

func permute12(s State) State {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	for i := range 12 {
		round(&x0, &x1, &x2, &x3, &x4, constants[i])
	}

	return State{x0, x1, x2, x3, x4}
}

func permute6(s State) State {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	for i := 6; i < 12; i++ {
		round(&x0, &x1, &x2, &x3, &x4, constants[i])
	}

	return State{x0, x1, x2, x3, x4}
}
