// ixl is an interactive workbench for the indexlist package.
//
// Usage:
//
//	ixl [opts]                 Start an interactive session
//	ixl play [opts] <script>   Run a HuJSON op script and exit
//	ixl bench [opts] <count>   Run the benchmark and exit
//
// Options:
//
//	-m, --max-slots    Cap backing-store growth (default: unlimited)
//	-c, --capacity     Preallocate backing slots
//	-r, --report       Write the bench report to this file (JSON, atomic)
//
// Commands (in REPL):
//
//	pushf <value>             Insert at the front, prints the new handle
//	pushb <value>             Insert at the back
//	before <h> <value>        Insert before handle
//	after <h> <value>         Insert after handle
//	rm <h>                    Remove by handle
//	popf / popb               Remove at the front / back
//	get <h>                   Read a value
//	set <h> <value>           Replace a value
//	next <h> / prev <h>       Neighbor handles
//	front / back              Peek at the endpoints
//	ls / rev                  Forward / backward listing
//	find <value>              First handle whose value matches
//	len                       Live node count
//	info                      Store statistics
//	check                     Run the internal invariant check
//	bulk <count>              Insert count random UUID values
//	bench <count> [file]      Benchmark push/get/churn/walk
//	play <script>             Run a HuJSON op script against this list
//	help                      Show this help
//	exit / quit / q           Exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/indexlist/pkg/indexlist"
	"github.com/peterh/liner"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "play":
			return runPlay(args[1:])
		case "bench":
			return runBench(args[1:])
		case "help", "--help", "-h":
			printUsage()

			return nil
		}
	}

	return runInteractive(args)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  ixl [opts]                 Start an interactive session\n")
	fmt.Fprintf(os.Stderr, "  ixl play [opts] <script>   Run a HuJSON op script and exit\n")
	fmt.Fprintf(os.Stderr, "  ixl bench [opts] <count>   Run the benchmark and exit\n")
}

// listFlags registers the construction options shared by every mode.
func listFlags(fs *flag.FlagSet) (maxSlots, capacity *int) {
	maxSlots = fs.IntP("max-slots", "m", 0, "cap backing-store growth (0 = unlimited)")
	capacity = fs.IntP("capacity", "c", 0, "preallocate backing slots")

	return maxSlots, capacity
}

func newList(maxSlots, capacity int) (*indexlist.List[string], error) {
	list, err := indexlist.NewWithOptions[string](indexlist.Options{
		InitialCapacity: capacity,
		MaxSlots:        maxSlots,
	})
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	return list, nil
}

func runInteractive(args []string) error {
	fs := flag.NewFlagSet("ixl", flag.ExitOnError)
	maxSlots, capacity := listFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := newList(*maxSlots, *capacity)
	if err != nil {
		return err
	}

	sess := newSession(list)

	return sess.runREPL()
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	maxSlots, capacity := listFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ixl play [opts] <script>\n\n")
		fmt.Fprintf(os.Stderr, "Run a HuJSON op script against a fresh list.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()

		return errors.New("missing script path")
	}

	list, err := newList(*maxSlots, *capacity)
	if err != nil {
		return err
	}

	sess := newSession(list)

	if err := sess.playScript(fs.Arg(0)); err != nil {
		return err
	}

	fmt.Printf("script ok: %d nodes live, %d slots used\n", list.Len(), list.Slots())

	return nil
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	maxSlots, capacity := listFlags(fs)
	report := fs.StringP("report", "r", "", "write the bench report to this file (JSON, atomic)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ixl bench [opts] <count>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()

		return errors.New("missing op count")
	}

	count, err := parsePositive(fs.Arg(0))
	if err != nil {
		return err
	}

	list, err := newList(*maxSlots, *capacity)
	if err != nil {
		return err
	}

	sess := newSession(list)

	return sess.bench(count, *report)
}

// session holds one list plus the human-readable handle labels assigned to
// it. Labels exist only in the session; the list itself hands out opaque
// handles.
type session struct {
	list   *indexlist.List[string]
	byName map[string]indexlist.Handle
	names  map[indexlist.Handle]string
	nextID int
	liner  *liner.State
}

func newSession(list *indexlist.List[string]) *session {
	return &session{
		list:   list,
		byName: make(map[string]indexlist.Handle),
		names:  make(map[indexlist.Handle]string),
	}
}

// label assigns (or returns) the session name for a handle.
func (s *session) label(h indexlist.Handle) string {
	if name, ok := s.names[h]; ok {
		return name
	}

	s.nextID++
	name := fmt.Sprintf("h%d", s.nextID)

	s.byName[name] = h
	s.names[h] = name

	return name
}

// handleArg resolves a label like "h3" back to its handle. Stale labels
// still resolve; the list is what rejects them.
func (s *session) handleArg(arg string) (indexlist.Handle, error) {
	h, ok := s.byName[arg]
	if !ok {
		return indexlist.Handle{}, fmt.Errorf("unknown handle %q (labels look like h1, h2, ...)", arg)
	}

	return h, nil
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".ixl_history")
}

var replCommands = []string{
	"pushf", "pushb", "before", "after", "rm", "popf", "popb",
	"get", "set", "next", "prev", "front", "back", "ls", "rev",
	"find", "len", "info", "check", "bulk", "bench", "play",
	"help", "exit", "quit",
}

func (s *session) completer(line string) []string {
	var matches []string

	for _, cmd := range replCommands {
		if strings.HasPrefix(cmd, strings.ToLower(line)) {
			matches = append(matches, cmd)
		}
	}

	return matches
}

func (s *session) runREPL() error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()

	s.liner.SetCtrlCAborts(true)
	s.liner.SetCompleter(s.completer)

	// Load history
	if f, err := os.Open(historyFile()); err == nil {
		s.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Println("ixl - indexlist workbench")
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := s.liner.Prompt("ixl> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" || cmd == "q" {
			fmt.Println("Bye!")

			break
		}

		if err := s.dispatch(cmd, args); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}

	s.saveHistory()

	return nil
}

// saveHistory persists command history to disk.
func (s *session) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}

	s.liner.WriteHistory(f)
	f.Close()
}

func (s *session) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		s.printHelp()

		return nil
	case "pushf":
		return s.cmdPush(args, true)
	case "pushb":
		return s.cmdPush(args, false)
	case "before":
		return s.cmdInsert(args, true)
	case "after":
		return s.cmdInsert(args, false)
	case "rm":
		return s.cmdRemove(args)
	case "popf":
		return s.cmdPop(true)
	case "popb":
		return s.cmdPop(false)
	case "get":
		return s.cmdGet(args)
	case "set":
		return s.cmdSet(args)
	case "next":
		return s.cmdNeighbor(args, true)
	case "prev":
		return s.cmdNeighbor(args, false)
	case "front":
		return s.cmdPeek(true)
	case "back":
		return s.cmdPeek(false)
	case "ls":
		return s.cmdList(false)
	case "rev":
		return s.cmdList(true)
	case "find":
		return s.cmdFind(args)
	case "len":
		fmt.Println(s.list.Len())

		return nil
	case "info":
		return s.cmdInfo()
	case "check":
		return s.cmdCheck()
	case "bulk":
		return s.cmdBulk(args)
	case "bench":
		return s.cmdBench(args)
	case "play":
		if len(args) < 1 {
			return errors.New("usage: play <script>")
		}

		return s.playScript(args[0])
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *session) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  pushf <value>        Insert at the front, prints the new handle")
	fmt.Println("  pushb <value>        Insert at the back")
	fmt.Println("  before <h> <value>   Insert before handle")
	fmt.Println("  after <h> <value>    Insert after handle")
	fmt.Println("  rm <h>               Remove by handle")
	fmt.Println("  popf / popb          Remove at the front / back")
	fmt.Println("  get <h>              Read a value")
	fmt.Println("  set <h> <value>      Replace a value")
	fmt.Println("  next <h> / prev <h>  Neighbor handles")
	fmt.Println("  front / back         Peek at the endpoints")
	fmt.Println("  ls / rev             Forward / backward listing")
	fmt.Println("  find <value>         First handle whose value matches")
	fmt.Println("  len                  Live node count")
	fmt.Println("  info                 Store statistics")
	fmt.Println("  check                Run the internal invariant check")
	fmt.Println("  bulk <count>         Insert count random UUID values")
	fmt.Println("  bench <count> [file] Benchmark push/get/churn/walk")
	fmt.Println("  play <script>        Run a HuJSON op script against this list")
	fmt.Println("  exit / quit / q      Exit")
}

func (s *session) cmdPush(args []string, front bool) error {
	if len(args) < 1 {
		return errors.New("usage: pushf|pushb <value>")
	}

	value := strings.Join(args, " ")

	var (
		h   indexlist.Handle
		err error
	)

	if front {
		h, err = s.list.PushFront(value)
	} else {
		h, err = s.list.PushBack(value)
	}

	if err != nil {
		return err
	}

	fmt.Printf("%s = %q (%v)\n", s.label(h), value, h)

	return nil
}

func (s *session) cmdInsert(args []string, before bool) error {
	if len(args) < 2 {
		return errors.New("usage: before|after <h> <value>")
	}

	anchor, err := s.handleArg(args[0])
	if err != nil {
		return err
	}

	value := strings.Join(args[1:], " ")

	var h indexlist.Handle

	if before {
		h, err = s.list.InsertBefore(anchor, value)
	} else {
		h, err = s.list.InsertAfter(anchor, value)
	}

	if err != nil {
		return err
	}

	fmt.Printf("%s = %q (%v)\n", s.label(h), value, h)

	return nil
}

func (s *session) cmdRemove(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: rm <h>")
	}

	h, err := s.handleArg(args[0])
	if err != nil {
		return err
	}

	value, err := s.list.Remove(h)
	if err != nil {
		return err
	}

	fmt.Printf("removed %s = %q\n", args[0], value)

	return nil
}

func (s *session) cmdPop(front bool) error {
	var (
		value string
		err   error
	)

	if front {
		value, err = s.list.PopFront()
	} else {
		value, err = s.list.PopBack()
	}

	if err != nil {
		return err
	}

	fmt.Printf("popped %q\n", value)

	return nil
}

func (s *session) cmdGet(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: get <h>")
	}

	h, err := s.handleArg(args[0])
	if err != nil {
		return err
	}

	value, err := s.list.Get(h)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %q\n", args[0], value)

	return nil
}

func (s *session) cmdSet(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <h> <value>")
	}

	h, err := s.handleArg(args[0])
	if err != nil {
		return err
	}

	value := strings.Join(args[1:], " ")

	if err := s.list.Set(h, value); err != nil {
		return err
	}

	fmt.Printf("%s = %q\n", args[0], value)

	return nil
}

func (s *session) cmdNeighbor(args []string, forward bool) error {
	if len(args) < 1 {
		return errors.New("usage: next|prev <h>")
	}

	h, err := s.handleArg(args[0])
	if err != nil {
		return err
	}

	var (
		neighbor indexlist.Handle
		ok       bool
	)

	if forward {
		neighbor, ok = s.list.Next(h)
	} else {
		neighbor, ok = s.list.Prev(h)
	}

	if !ok {
		fmt.Println("(none)")

		return nil
	}

	value, err := s.list.Get(neighbor)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %q\n", s.label(neighbor), value)

	return nil
}

func (s *session) cmdPeek(front bool) error {
	var (
		value string
		err   error
	)

	if front {
		value, err = s.list.Front()
	} else {
		value, err = s.list.Back()
	}

	if err != nil {
		return err
	}

	fmt.Printf("%q\n", value)

	return nil
}

func (s *session) cmdList(reverse bool) error {
	seq := s.list.All()
	if reverse {
		seq = s.list.Backward()
	}

	count := 0

	seq(func(h indexlist.Handle, value string) bool {
		fmt.Printf("  %-6s %q\n", s.label(h), value)
		count++

		return true
	})

	fmt.Printf("(%d nodes)\n", count)

	return nil
}

func (s *session) cmdFind(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: find <value>")
	}

	want := strings.Join(args, " ")

	h, ok := s.list.Find(func(v string) bool { return v == want })
	if !ok {
		fmt.Println("(not found)")

		return nil
	}

	fmt.Printf("%s (%v)\n", s.label(h), h)

	return nil
}

func (s *session) cmdInfo() error {
	live := s.list.Len()
	slots := s.list.Slots()

	fmt.Printf("live nodes:  %d\n", live)
	fmt.Printf("slots used:  %d\n", slots)
	fmt.Printf("free slots:  %d\n", slots-live)

	return nil
}

func (s *session) cmdCheck() error {
	if err := s.list.Check(); err != nil {
		return fmt.Errorf("invariants violated: %w", err)
	}

	fmt.Println("ok")

	return nil
}
