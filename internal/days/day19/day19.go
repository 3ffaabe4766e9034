// Package day19 sorts machine parts through a tree of workflow conditions.
package day19

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"svw.info/advent/internal/aoc"
)

const Title = "Aplenty"

const Example = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
`

const (
	accept = "A"
	reject = "R"
	start  = "in"
)

// part holds the x, m, a, s ratings.
type part [4]int

var categories = map[byte]int{'x': 0, 'm': 1, 'a': 2, 's': 3}

// rule sends a part to target when rating[cat] op value holds. A rule with
// op 0 always matches.
type rule struct {
	cat    int
	op     byte
	value  int
	target string
}

func (r rule) matches(p part) bool {
	switch r.op {
	case '<':
		return p[r.cat] < r.value
	case '>':
		return p[r.cat] > r.value
	default:
		return true
	}
}

type workflows map[string][]rule

func parseRule(s string) (rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return rule{target: s}, nil
	}
	if len(cond) < 3 {
		return rule{}, fmt.Errorf("bad condition %q", cond)
	}
	cat, ok := categories[cond[0]]
	if !ok {
		return rule{}, fmt.Errorf("unknown category in %q", cond)
	}
	op := cond[1]
	if op != '<' && op != '>' {
		return rule{}, fmt.Errorf("unknown comparison in %q", cond)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return rule{}, fmt.Errorf("bad value in %q", cond)
	}
	return rule{cat: cat, op: op, value: v, target: target}, nil
}

func parse(input string) (workflows, []part, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return nil, nil, fmt.Errorf("day19: empty input")
	}
	wf := make(workflows)
	for _, line := range strings.Split(blocks[0], "\n") {
		line = strings.TrimSpace(line)
		name, body, ok := strings.Cut(line, "{")
		if !ok || !strings.HasSuffix(body, "}") {
			return nil, nil, fmt.Errorf("day19: bad workflow %q", line)
		}
		var rules []rule
		for _, s := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
			r, err := parseRule(s)
			if err != nil {
				return nil, nil, fmt.Errorf("day19: workflow %s: %w", name, err)
			}
			rules = append(rules, r)
		}
		wf[name] = rules
	}
	if _, ok := wf[start]; !ok {
		return nil, nil, fmt.Errorf("day19: no %q workflow", start)
	}
	var parts []part
	if len(blocks) > 1 {
		for _, line := range strings.Split(blocks[1], "\n") {
			line = strings.Trim(strings.TrimSpace(line), "{}")
			var p part
			for _, kv := range strings.Split(line, ",") {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || len(k) != 1 {
					return nil, nil, fmt.Errorf("day19: bad rating %q", kv)
				}
				cat, known := categories[k[0]]
				if !known {
					return nil, nil, fmt.Errorf("day19: unknown category in %q", kv)
				}
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, nil, fmt.Errorf("day19: bad rating %q", kv)
				}
				p[cat] = n
			}
			parts = append(parts, p)
		}
	}
	return wf, parts, nil
}

func (wf workflows) accepts(p part) (bool, error) {
	name := start
	for hops := 0; hops <= len(wf); hops++ {
		switch name {
		case accept:
			return true, nil
		case reject:
			return false, nil
		}
		rules, ok := wf[name]
		if !ok {
			return false, fmt.Errorf("day19: unknown workflow %q", name)
		}
		next := ""
		for _, r := range rules {
			if r.matches(p) {
				next = r.target
				break
			}
		}
		if next == "" {
			return false, fmt.Errorf("day19: workflow %q has no matching rule", name)
		}
		name = next
	}
	return false, fmt.Errorf("day19: workflow cycle")
}

// box is a set of parts: for each category the half-open rating range [lo, hi).
type box [4][2]int

func (b box) size() int {
	n := 1
	for _, r := range b {
		n *= max(0, r[1]-r[0])
	}
	return n
}

// split cuts b on rule r into the parts it matches and the rest.
func (b box) split(r rule) (in, out box) {
	in, out = b, b
	lo, hi := b[r.cat][0], b[r.cat][1]
	switch r.op {
	case '<':
		in[r.cat] = [2]int{lo, min(hi, r.value)}
		out[r.cat] = [2]int{max(lo, r.value), hi}
	case '>':
		in[r.cat] = [2]int{max(lo, r.value+1), hi}
		out[r.cat] = [2]int{lo, min(hi, r.value+1)}
	default:
		out[r.cat] = [2]int{lo, lo}
	}
	return in, out
}

// count returns how many parts of b end up accepted starting at name.
func (wf workflows) count(b box, name string, depth int) (int, error) {
	if b.size() == 0 || name == reject {
		return 0, nil
	}
	if name == accept {
		return b.size(), nil
	}
	if depth > len(wf) {
		return 0, fmt.Errorf("day19: workflow cycle")
	}
	rules, ok := wf[name]
	if !ok {
		return 0, fmt.Errorf("day19: unknown workflow %q", name)
	}
	total := 0
	for _, r := range rules {
		in, out := b.split(r)
		n, err := wf.count(in, r.target, depth+1)
		if err != nil {
			return 0, err
		}
		total += n
		b = out
		if b.size() == 0 {
			break
		}
	}
	return total, nil
}

type Solver struct{}

func (Solver) Part1(_ context.Context, input string) (string, error) {
	wf, parts, err := parse(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, p := range parts {
		ok, err := wf.accepts(p)
		if err != nil {
			return "", err
		}
		if ok {
			total += p[0] + p[1] + p[2] + p[3]
		}
	}
	return aoc.Itoa(total), nil
}

func (Solver) Part2(_ context.Context, input string) (string, error) {
	wf, _, err := parse(input)
	if err != nil {
		return "", err
	}
	all := box{{1, 4001}, {1, 4001}, {1, 4001}, {1, 4001}}
	n, err := wf.count(all, start, 0)
	if err != nil {
		return "", err
	}
	return aoc.Itoa(n), nil
}
