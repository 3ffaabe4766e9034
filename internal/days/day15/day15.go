// Package day15 runs the HASHMAP lens initialization sequence.
package day15

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Lens Library"

const Example = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

// hash is the HASH algorithm: for each byte, add, multiply by 17, mod 256.
func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// steps drops newlines, which the sequence ignores.
func steps(input string) []string {
	s := strings.NewReplacer("\n", "", "\r", "").Replace(strings.TrimSpace(input))
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

type lens struct {
	label string
	focal int
}

// boxes is the 256-bucket hash map. Each box keeps insertion order.
type boxes [256][]lens

func (b *boxes) put(label string, focal int) {
	box := &b[hash(label)]
	for i := range *box {
		if (*box)[i].label == label {
			(*box)[i].focal = focal
			return
		}
	}
	*box = append(*box, lens{label, focal})
}

func (b *boxes) remove(label string) {
	box := &b[hash(label)]
	for i, l := range *box {
		if l.label == label {
			*box = append((*box)[:i], (*box)[i+1:]...)
			return
		}
	}
}

func (b *boxes) power() int {
	total := 0
	for i, box := range b {
		for slot, l := range box {
			total += (i + 1) * (slot + 1) * l.focal
		}
	}
	return total
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	total := 0
	for _, s := range steps(input) {
		total += hash(s)
	}
	return aoc.Itoa(total), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	var b boxes
	for _, s := range steps(input) {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			b.remove(label)
			continue
		}
		label, val, ok := strings.Cut(s, "=")
		if !ok {
			return "", fmt.Errorf("day15: bad step %q", s)
		}
		focal, err := strconv.Atoi(val)
		if err != nil || focal < 1 || focal > 9 {
			return "", fmt.Errorf("day15: bad focal length in %q", s)
		}
		b.put(label, focal)
	}
	return aoc.Itoa(b.power()), nil
}
