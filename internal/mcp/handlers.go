package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/codeassist/internal/gateway"
)

func (s *Server) handleConvertCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.gateway.Convert(ctx, gateway.ConversionRequest{
		SourceCode:     request.GetString("code", ""),
		TargetLanguage: request.GetString("language", ""),
	})
	return toolResult(out, err), nil
}

func (s *Server) handleDebugCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.gateway.Debug(ctx, gateway.DebugRequest{
		SourceCode: request.GetString("code", ""),
	})
	return toolResult(out, err), nil
}

func (s *Server) handleCheckCodeQuality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.gateway.CheckQuality(ctx, gateway.QualityRequest{
		SourceCode: request.GetString("code", ""),
		Parameters: request.GetString("parameters", ""),
	})
	return toolResult(out, err), nil
}

// toolResult reports gateway errors as tool errors carrying only the
// client-facing message.
func toolResult(out string, err error) *mcp.CallToolResult {
	if err == nil {
		return mcp.NewToolResultText(out)
	}
	var verr *gateway.ValidationError
	if errors.As(err, &verr) {
		return mcp.NewToolResultError(verr.Message)
	}
	var oerr *gateway.OperationFailedError
	if errors.As(err, &oerr) {
		return mcp.NewToolResultError(oerr.Message())
	}
	return mcp.NewToolResultError("Operation failed")
}
