package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ListDocuments(ctx context.Context) error
	SearchDocuments(ctx context.Context) error
	UploadDocument(ctx context.Context) error
	DeleteDocument(ctx context.Context) error
	ShowDocument(ctx context.Context) error

	ListClauses(ctx context.Context) error
	FilterClauses(ctx context.Context) error
	ClauseTags(ctx context.Context) error

	OpenNegotiation(ctx context.Context) error
	ShowChanges(ctx context.Context) error
	ProposeChange(ctx context.Context) error
	AcceptChange(ctx context.Context) error
	RejectChange(ctx context.Context) error
	ShowPlaybook(ctx context.Context) error

	CreateDraft(ctx context.Context) error
	EditDraft(ctx context.Context) error
	SimulateChange(ctx context.Context) error
	ExplainClause(ctx context.Context) error

	ListWorkflows(ctx context.Context) error
	StartWorkflow(ctx context.Context) error
	ApproveWorkflow(ctx context.Context) error
	RejectWorkflow(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ClauseCraft CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Documents:   docs, search, upload, rm, show")
				printlnFn("Clauses:     clauses, cfilter, tags")
				printlnFn("Negotiation: nego, changes, propose, accept, reject, playbook")
				printlnFn("AI:          draft, dedit, simulate, explain")
				printlnFn("Workflows:   wf, wfstart, wfapprove, wfreject")
				printlnFn("Session:     logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "docs":
			_ = a.ListDocuments(ctx)
		case "search":
			_ = a.SearchDocuments(ctx)
		case "upload":
			_ = a.UploadDocument(ctx)
		case "rm":
			_ = a.DeleteDocument(ctx)
		case "show":
			_ = a.ShowDocument(ctx)

		case "clauses":
			_ = a.ListClauses(ctx)
		case "cfilter":
			_ = a.FilterClauses(ctx)
		case "tags":
			_ = a.ClauseTags(ctx)

		case "nego":
			_ = a.OpenNegotiation(ctx)
		case "changes":
			_ = a.ShowChanges(ctx)
		case "propose":
			_ = a.ProposeChange(ctx)
		case "accept":
			_ = a.AcceptChange(ctx)
		case "reject":
			_ = a.RejectChange(ctx)
		case "playbook":
			_ = a.ShowPlaybook(ctx)

		case "draft":
			_ = a.CreateDraft(ctx)
		case "dedit":
			_ = a.EditDraft(ctx)
		case "simulate":
			_ = a.SimulateChange(ctx)
		case "explain":
			_ = a.ExplainClause(ctx)

		case "wf":
			_ = a.ListWorkflows(ctx)
		case "wfstart":
			_ = a.StartWorkflow(ctx)
		case "wfapprove":
			_ = a.ApproveWorkflow(ctx)
		case "wfreject":
			_ = a.RejectWorkflow(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
