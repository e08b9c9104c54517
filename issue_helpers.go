package domid

import (
	"fmt"

	"github.com/reoring/domid/i18n"
)

// IssueAt creates an Issue of the given kind and code at index. The message is
// looked up through the current i18n translator with params as placeholder data.
func IssueAt(kind Kind, code string, index int, value string, params map[string]any) Issue {
	return Issue{
		Kind:    kind,
		Code:    code,
		Index:   index,
		Value:   value,
		Message: i18n.T(code, messageData(index, value, params)),
		Params:  params,
	}
}

func formatIssue(code string, index int, value string, params map[string]any) Issues {
	return Issues{IssueAt(KindFormat, code, index, value, params)}
}

func typeIssue(code string, value string, params map[string]any) Issues {
	return Issues{IssueAt(KindType, code, -1, value, params)}
}

func messageData(index int, value string, params map[string]any) map[string]string {
	data := make(map[string]string, len(params)+2)
	if index >= 0 {
		data["index"] = fmt.Sprint(index)
	}
	data["value"] = value
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	return data
}

// codePoint renders r as U+XXXX.
func codePoint(r rune) string { return fmt.Sprintf("U+%04X", r) }

// rawByte renders a byte that is not valid UTF-8 as 0xXX.
func rawByte(b byte) string { return fmt.Sprintf("0x%02X", b) }
