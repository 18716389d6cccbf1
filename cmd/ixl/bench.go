package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
)

func parsePositive(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected a positive count, got %q", arg)
	}

	return n, nil
}

// cmdBulk appends count nodes with random UUIDv7 payloads.
func (s *session) cmdBulk(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: bulk <count>")
	}

	count, err := parsePositive(args[0])
	if err != nil {
		return err
	}

	start := time.Now()

	for i := 0; i < count; i++ {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}

		if _, err := s.list.PushBack(id.String()); err != nil {
			return fmt.Errorf("inserted %d of %d: %w", i, count, err)
		}
	}

	fmt.Printf("inserted %d nodes in %v (%d live, %d slots)\n",
		count, time.Since(start).Round(time.Microsecond), s.list.Len(), s.list.Slots())

	return nil
}

func (s *session) cmdBench(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: bench <count> [report.json]")
	}

	count, err := parsePositive(args[0])
	if err != nil {
		return err
	}

	reportPath := ""
	if len(args) > 1 {
		reportPath = args[1]
	}

	return s.bench(count, reportPath)
}

// benchReport is the JSON shape written by the bench command.
type benchReport struct {
	Ops        int    `json:"ops"`
	PushNS     int64  `json:"push_ns"`
	GetNS      int64  `json:"get_ns"`
	ChurnNS    int64  `json:"churn_ns"`
	WalkNS     int64  `json:"walk_ns"`
	FinalLive  int    `json:"final_live"`
	FinalSlots int    `json:"final_slots"`
	Timestamp  string `json:"timestamp"`
}

// bench runs four phases against the session's list: sequential pushes,
// random gets, pop-front/push-back churn, and a full forward walk. The list
// keeps whatever state the bench leaves behind.
func (s *session) bench(count int, reportPath string) error {
	handles := make([]indexlist.Handle, 0, count)

	pushStart := time.Now()

	for i := 0; i < count; i++ {
		h, err := s.list.PushBack(fmt.Sprintf("bench-%d", i))
		if err != nil {
			return fmt.Errorf("push phase at %d: %w", i, err)
		}

		handles = append(handles, h)
	}

	pushTook := time.Since(pushStart)

	rng := rand.New(rand.NewPCG(uint64(count), 0))
	getStart := time.Now()

	for i := 0; i < count; i++ {
		h := handles[rng.IntN(len(handles))]
		if _, err := s.list.Get(h); err != nil {
			return fmt.Errorf("get phase at %d: %w", i, err)
		}
	}

	getTook := time.Since(getStart)

	churnStart := time.Now()

	for i := 0; i < count; i++ {
		if _, err := s.list.PopFront(); err != nil {
			return fmt.Errorf("churn phase at %d: %w", i, err)
		}

		if _, err := s.list.PushBack(fmt.Sprintf("churn-%d", i)); err != nil {
			return fmt.Errorf("churn phase at %d: %w", i, err)
		}
	}

	churnTook := time.Since(churnStart)

	walkStart := time.Now()
	walked := 0

	s.list.Values()(func(string) bool {
		walked++

		return true
	})

	walkTook := time.Since(walkStart)

	if err := s.list.Check(); err != nil {
		return fmt.Errorf("invariants violated after bench: %w", err)
	}

	fmt.Printf("ops:    %d per phase\n", count)
	fmt.Printf("push:   %v  (%s/op)\n", pushTook.Round(time.Microsecond), perOp(pushTook, count))
	fmt.Printf("get:    %v  (%s/op)\n", getTook.Round(time.Microsecond), perOp(getTook, count))
	fmt.Printf("churn:  %v  (%s/op)\n", churnTook.Round(time.Microsecond), perOp(churnTook, count))
	fmt.Printf("walk:   %v  (%d nodes)\n", walkTook.Round(time.Microsecond), walked)

	if reportPath == "" {
		return nil
	}

	report := benchReport{
		Ops:        count,
		PushNS:     pushTook.Nanoseconds(),
		GetNS:      getTook.Nanoseconds(),
		ChurnNS:    churnTook.Nanoseconds(),
		WalkNS:     walkTook.Nanoseconds(),
		FinalLive:  s.list.Len(),
		FinalSlots: s.list.Slots(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	data = append(data, '\n')

	// Atomic write so a crash mid-bench never leaves a truncated report.
	if err := atomic.WriteFile(reportPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("report written to %s\n", reportPath)

	return nil
}

func perOp(took time.Duration, count int) string {
	return (took / time.Duration(count)).String()
}
