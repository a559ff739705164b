package httpapi

import (
	"encoding/json"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const textCodeInvalidRequest = "INVALID_REQUEST"

// Request is the GraphQL-over-HTTP payload.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// ParseBody decodes a JSON POST body.
func ParseBody(body []byte) (Request, error) {
	var req Request
	if len(body) == 0 {
		return req, invalidRequest(nil, "request body is empty")
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, invalidRequest(err, "request body is not valid JSON")
	}
	return req, req.validate()
}

// ParseQueryString builds a request from GET parameters. variables, when
// present, must be a JSON object.
func ParseQueryString(query, operationName, variables string) (Request, error) {
	req := Request{Query: query, OperationName: operationName}
	if strings.TrimSpace(variables) != "" {
		if err := json.Unmarshal([]byte(variables), &req.Variables); err != nil {
			return req, invalidRequest(err, "variables must be a JSON object")
		}
	}
	return req, req.validate()
}

func (r Request) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return invalidRequest(nil, "query is required")
	}
	return nil
}

func invalidRequest(err error, msg string) *goerrors.Error {
	var rich *goerrors.Error
	if err != nil {
		rich = goerrors.Wrap(err, goerrors.CategoryValidation, msg)
	} else {
		rich = goerrors.New(msg, goerrors.CategoryValidation)
	}
	return rich.WithCode(goerrors.CodeBadRequest).WithTextCode(textCodeInvalidRequest)
}

type errorPayload struct {
	Errors []errorEntry `json:"errors"`
}

type errorEntry struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func errorBody(err error) errorPayload {
	entry := errorEntry{Message: err.Error()}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		entry.Message = rich.Message
		entry.Extensions = map[string]any{
			"category":  rich.Category,
			"code":      rich.Code,
			"text_code": rich.TextCode,
		}
	}
	return errorPayload{Errors: []errorEntry{entry}}
}
