package mcp

import "github.com/mark3labs/mcp-go/mcp"

var convertCodeTool = mcp.NewTool("convert_code",
	mcp.WithDescription("Translate source code into another programming language."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to translate"),
	),
	mcp.WithString("language",
		mcp.Required(),
		mcp.Description("Target language name, e.g. Python"),
	),
)

var debugCodeTool = mcp.NewTool("debug_code",
	mcp.WithDescription("Identify and correct defects in source code."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to debug"),
	),
)

var checkCodeQualityTool = mcp.NewTool("check_code_quality",
	mcp.WithDescription("Evaluate source code against free-form quality criteria."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to evaluate"),
	),
	mcp.WithString("parameters",
		mcp.Description("Criteria to evaluate against, e.g. readability, naming"),
	),
)
