package greeninvoice

import (
	"encoding/json"
	"fmt"
)

const noResponseBody = "<no response body>"

// bodyShape tags the forms an error body can take.
type bodyShape int

const (
	shapeEmpty bodyShape = iota
	shapeNonMapping
	shapeMultiMessage
	shapeSingleMessage
	shapeMalformed
)

// classifiedBody is the result of inspecting a decoded error body.
type classifiedBody struct {
	shape       bodyShape
	description string
	code        string
	messages    []Message
}

// classifyErrorBody builds the APIError for a non-2xx response.
func classifyErrorBody(statusCode int, body any) *APIError {
	cb := inspectErrorBody(body)

	switch cb.shape {
	case shapeMultiMessage:
		return &APIError{StatusCode: statusCode, Messages: cb.messages}
	case shapeSingleMessage:
		return &APIError{StatusCode: statusCode, Description: cb.description, Code: cb.code}
	default:
		return &APIError{StatusCode: statusCode, Description: cb.description}
	}
}

func inspectErrorBody(body any) classifiedBody {
	if isEmptyBody(body) {
		return classifiedBody{shape: shapeEmpty, description: noResponseBody}
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return classifiedBody{shape: shapeNonMapping, description: stringify(body)}
	}

	malformed := classifiedBody{
		shape:       shapeMalformed,
		description: fmt.Sprintf("Invalid messages object in response from API: %s", stringify(body)),
	}

	messages := obj
	if wrapped, present := obj["messages"]; present {
		m, ok := wrapped.(map[string]any)
		if !ok {
			return malformed
		}
		messages = m
	}

	switch message := messages["message"].(type) {
	case []any:
		out := make([]Message, 0, len(message))
		for _, item := range message {
			out = append(out, toMessage(item))
		}
		return classifiedBody{shape: shapeMultiMessage, messages: out}
	case map[string]any:
		desc, ok := message["description"]
		if !ok || desc == nil {
			return malformed
		}
		cb := classifiedBody{shape: shapeSingleMessage, description: stringify(desc)}
		if code, ok := message["code"]; ok && code != nil {
			cb.code = stringify(code)
		}
		return cb
	default:
		return malformed
	}
}

func toMessage(item any) Message {
	obj, ok := item.(map[string]any)
	if !ok {
		return Message{Description: stringify(item)}
	}
	var m Message
	if desc, ok := obj["description"]; ok && desc != nil {
		m.Description = stringify(desc)
	}
	if code, ok := obj["code"]; ok && code != nil {
		m.Code = stringify(code)
	}
	return m
}

// isEmptyBody treats JSON values that carry nothing as an absent body.
func isEmptyBody(body any) bool {
	switch v := body.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
