package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) AddRecipe(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) QuickAdd(ctx context.Context) error {
	f.calls = append(f.calls, "quickadd")
	return nil
}
func (f *fakeExec) ListCatalog(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) ListMine(ctx context.Context) error {
	f.calls = append(f.calls, "mine")
	return nil
}
func (f *fakeExec) ListInbox(ctx context.Context) error {
	f.calls = append(f.calls, "inbox")
	return nil
}
func (f *fakeExec) ShareRecipe(ctx context.Context) error {
	f.calls = append(f.calls, "share")
	return nil
}
func (f *fakeExec) SearchCatalog(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) ListUsers(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add",
		"l",
		"mine",
		"inbox",
		"share",
		"search",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "list", "mine", "inbox", "share", "search"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("nosuchcmd\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
