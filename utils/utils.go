package utils

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// CleanJSON returns JSON by trimming prefixes and postfixes,
// this is more useful than TrimBackticks,
// as the input can be pasted like,
// `Here you go: {json}`
func CleanJSON(bs []byte) []byte {
	trimmedPrefix := trimPrefixBeforeJSON(bs)
	trimmedJSON := trimPostfixAfterJSON(trimmedPrefix)
	return trimmedJSON
}

// Removes any prefixes before the JSON (like "Sure, here you go:")
func trimPrefixBeforeJSON(bs []byte) []byte {
	startObject := bytes.IndexByte(bs, '{')
	startArray := bytes.IndexByte(bs, '[')

	var start int
	if startObject == -1 && startArray == -1 {
		return bs
	} else if startObject == -1 {
		start = startArray
	} else if startArray == -1 {
		start = startObject
	} else {
		start = min(startObject, startArray)
	}

	return bs[start:]
}

// Removes any postfixes after the JSON
func trimPostfixAfterJSON(bs []byte) []byte {
	endObject := bytes.LastIndexByte(bs, '}')
	endArray := bytes.LastIndexByte(bs, ']')

	var end int
	if endObject == -1 && endArray == -1 {
		return bs
	} else if endObject == -1 {
		end = endArray
	} else if endArray == -1 {
		end = endObject
	} else {
		end = max(endObject, endArray)
	}

	return bs[:end+1]
}

func JSONIndent(body string) string {
	var buf bytes.Buffer
	_ = json.Indent(&buf, []byte(body), "", "\t")
	return buf.String()
}

func ToJSON(val any) string {
	js, _ := json.Marshal(val)
	return string(js)
}

func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "\t")
	return string(js)
}

func ToYAML(val any) string {
	js, _ := yaml.Marshal(val)
	return string(js)
}

func BackticksJSON(js string) string {
	return "\n```json\n" + strings.TrimSpace(js) + "\n```\n"
}

var backtick = []byte("```")

// BytesTrimBackticks removes the fenced block markers, like ```yaml and ```,
// around the content
func BytesTrimBackticks(bs []byte) []byte {
	trimmed := bytes.TrimSpace(bs)
	if !bytes.HasPrefix(trimmed, backtick) {
		return bs
	}
	// skip the info string of the opening fence
	nl := bytes.IndexByte(trimmed, '\n')
	if nl == -1 {
		return []byte{}
	}
	body := trimmed[nl+1:]
	if end := bytes.LastIndex(body, backtick); end != -1 {
		body = body[:end]
	}
	return body
}
