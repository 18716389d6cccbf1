package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
)

// script is the decoded form of a play file. Scripts are HuJSON, so comments
// and trailing commas are fine.
type script struct {
	Ops []scriptOp `json:"ops"`
}

type scriptOp struct {
	// Op names the operation: pushf, pushb, before, after, rm, popf, popb,
	// set, check, expect, expect-rev, expect-len.
	Op string `json:"op"`

	// Value is the payload for insert and set ops.
	Value string `json:"value"`

	// At names the label of the anchor or target handle.
	At string `json:"at"`

	// As labels the handle an insert returns for later ops to reference.
	As string `json:"as"`

	// Want is the expected value order for expect and expect-rev.
	Want []string `json:"want"`

	// N is the expected count for expect-len.
	N int `json:"n"`
}

func loadScript(path string) (*script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}

	var sc script
	if err := json.Unmarshal(standardized, &sc); err != nil {
		return nil, fmt.Errorf("decoding script %s: %w", path, err)
	}

	return &sc, nil
}

// playScript runs a HuJSON op script against the session's list. The first
// failing op aborts the script with its index and cause.
func (s *session) playScript(path string) error {
	sc, err := loadScript(path)
	if err != nil {
		return err
	}

	for i, op := range sc.Ops {
		if err := s.playOp(op); err != nil {
			return fmt.Errorf("script %s, op %d (%s): %w", path, i, op.Op, err)
		}
	}

	return nil
}

// register binds op.As (when present) to a freshly returned handle, falling
// back to an auto-generated label so every handle stays addressable.
func (s *session) register(op scriptOp, h indexlist.Handle) {
	if op.As == "" {
		s.label(h)

		return
	}

	s.byName[op.As] = h
	s.names[h] = op.As
}

func (s *session) playOp(op scriptOp) error {
	switch op.Op {
	case "pushf", "pushb":
		var (
			h   indexlist.Handle
			err error
		)

		if op.Op == "pushf" {
			h, err = s.list.PushFront(op.Value)
		} else {
			h, err = s.list.PushBack(op.Value)
		}

		if err != nil {
			return err
		}

		s.register(op, h)

		return nil
	case "before", "after":
		anchor, err := s.handleArg(op.At)
		if err != nil {
			return err
		}

		var h indexlist.Handle

		if op.Op == "before" {
			h, err = s.list.InsertBefore(anchor, op.Value)
		} else {
			h, err = s.list.InsertAfter(anchor, op.Value)
		}

		if err != nil {
			return err
		}

		s.register(op, h)

		return nil
	case "rm":
		h, err := s.handleArg(op.At)
		if err != nil {
			return err
		}

		_, err = s.list.Remove(h)

		return err
	case "popf":
		_, err := s.list.PopFront()

		return err
	case "popb":
		_, err := s.list.PopBack()

		return err
	case "set":
		h, err := s.handleArg(op.At)
		if err != nil {
			return err
		}

		return s.list.Set(h, op.Value)
	case "check":
		return s.list.Check()
	case "expect":
		return s.expectValues(op.Want, false)
	case "expect-rev":
		return s.expectValues(op.Want, true)
	case "expect-len":
		if got := s.list.Len(); got != op.N {
			return fmt.Errorf("len is %d, want %d", got, op.N)
		}

		return nil
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

func (s *session) expectValues(want []string, reverse bool) error {
	seq := s.list.All()
	if reverse {
		seq = s.list.Backward()
	}

	var got []string

	seq(func(_ indexlist.Handle, v string) bool {
		got = append(got, v)

		return true
	})

	if len(want) == 0 {
		want = nil
	}

	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("values diverge (-want +got):\n%s", diff)
	}

	return nil
}
