// Command rowguard renders PostgreSQL row-level security policies from a
// declarative YAML policy file.
//
// Usage:
//
//	rowguard [flags] <command>
//
// Commands:
//   - render: print (or write) the CREATE POLICY statements
//   - list: summarize the policies in a table
//   - validate: check that every policy builds and renders
//   - config show: print the effective configuration
//   - version: print version information
//
// No command connects to a database; the output is SQL text to be applied by
// your migration tool of choice.
package main

func main() {
	Execute()
}
