package mcp

import "github.com/mark3labs/mcp-go/mcp"

var storeToolDef = mcp.NewTool("string_store",
	mcp.WithDescription("Analyze a string and store it with its derived properties. Fails if the exact string is already stored."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The string to analyze and store"),
	),
)

var fetchToolDef = mcp.NewTool("string_fetch",
	mcp.WithDescription("Look up a stored string by its exact value and return its properties."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string value to look up"),
	),
)

var deleteToolDef = mcp.NewTool("string_delete",
	mcp.WithDescription("Remove a stored string by its exact value."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string value to remove"),
	),
)

var listToolDef = mcp.NewTool("string_list",
	mcp.WithDescription("List stored strings in insertion order, optionally filtered by properties. All filters must match."),
	mcp.WithBoolean("is_palindrome",
		mcp.Description("Only strings that are (or are not) palindromes"),
	),
	mcp.WithNumber("min_length",
		mcp.Description("Only strings with at least this many characters"),
	),
	mcp.WithNumber("max_length",
		mcp.Description("Only strings with at most this many characters"),
	),
	mcp.WithNumber("word_count",
		mcp.Description("Only strings with exactly this many words"),
	),
	mcp.WithString("contains_character",
		mcp.Description("Only strings containing this character (single character)"),
	),
)

var queryToolDef = mcp.NewTool("string_query",
	mcp.WithDescription("Filter stored strings with a plain-English sentence, e.g. 'palindromic strings longer than 5 characters'. Unrecognized sentences are rejected, not matched broadly."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("The natural-language filter sentence"),
	),
)

var analyzeToolDef = mcp.NewTool("string_analyze",
	mcp.WithDescription("Compute the properties of a string (length, palindrome, unique characters, word count, character frequency, SHA-256) without storing it."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The string to analyze"),
	),
)

var exportToolDef = mcp.NewTool("string_export",
	mcp.WithDescription("Export all stored strings to a JSONL file. Defaults to ~/.strand/exports/strings-<timestamp>.jsonl."),
	mcp.WithString("path",
		mcp.Description("Destination file path (.jsonl, must be directly in an allowed directory)"),
	),
)

var importToolDef = mcp.NewTool("string_import",
	mcp.WithDescription("Import strings from a JSONL export file. Properties are recomputed from each value."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Source file path (.jsonl, must be directly in an allowed directory)"),
	),
	mcp.WithString("mode",
		mcp.Description("Duplicate handling: 'skip' (default) or 'error'"),
	),
)
