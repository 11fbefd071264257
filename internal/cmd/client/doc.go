// Package client provides the `todo` command-line client.
//
// The CLI talks to the todo HTTP API to perform common CRUD operations from
// a terminal. It is primarily intended for developers and operators.
//
// Installation
//
//	go install github.com/rzbill/todo/cmd/todo@latest
//
// Or build from this repo and use the `todo` binary.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it is read
// from the TODO_HTTP environment variable and defaults to
// http://127.0.0.1:8080.
//
// Usage
//
//	todo add "buy milk"
//	todo add "walk dog" --completed
//
//	todo list
//	todo list --filter 'completed == false'
//	todo list --filter 'title.startsWith("buy")'
//
//	todo get 1
//
//	# update keeps unspecified fields; the current title is carried through
//	# when only --completed changes
//	todo update 1 --title "buy oat milk"
//	todo update 1 --completed=true
//
//	todo done 1
//	todo rm 1
//
// Notes
//
//   - All commands print the affected todo (or the todo list) as indented
//     JSON on stdout.
//   - list filters are CEL expressions evaluated server-side against the
//     fields id, title and completed.
package client
