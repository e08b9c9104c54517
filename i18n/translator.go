package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "index" or "codepoint"). Built-in messages reference it as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":      "expected a string identifier",
		"required":          "identifier is required",
		"empty":             "at least one component is required",
		"empty_component":   "component {index} is empty",
		"invalid_character": "invalid character {codepoint} at index {index}",
		"invalid_component": "component {index} is not a valid identifier component: {value}",
		"numeric_first":     "first component cannot be numeric",
		"negative":          "component {index} cannot be negative: {value}",
		"fractional":        "component {index} cannot be fractional: {value}",
		"overflow":          "component {index} exceeds the numeric range: {value}",
		"unsupported_value": "component {index} must be string or non-negative integer",
		"component_count":   "identifier has {got} components, template expects {expected}",
		"too_few_params":    "template requests more parameters than supplied (required {required}, supplied {supplied})",
		"too_many_params":   "more parameters supplied than the template requires (required {required}, supplied {supplied})",
		"mismatch":          "component {index} is {value}, template expects {expected}",
		"wildcard_first":    "first template slot cannot be the extracted value",
		"invalid_template":  "template is malformed: {reason}",
		"parse_error":       "cannot parse {value} as an unsigned integer",
	},
	"ja": {
		"invalid_type":      "識別子は文字列である必要があります",
		"required":          "識別子は必須です",
		"empty":             "少なくとも 1 つのコンポーネントが必要です",
		"empty_component":   "コンポーネント {index} が空です",
		"invalid_character": "インデックス {index} の文字 {codepoint} は使用できません",
		"invalid_component": "コンポーネント {index} が不正です: {value}",
		"numeric_first":     "先頭のコンポーネントに数値は使用できません",
		"negative":          "コンポーネント {index} に負の値は使用できません: {value}",
		"fractional":        "コンポーネント {index} に小数は使用できません: {value}",
		"overflow":          "コンポーネント {index} が数値の範囲を超えています: {value}",
		"unsupported_value": "コンポーネント {index} は文字列または非負整数である必要があります",
		"component_count":   "識別子のコンポーネント数 {got} がテンプレートの {expected} と一致しません",
		"too_few_params":    "パラメータが不足しています (必要 {required}, 指定 {supplied})",
		"too_many_params":   "パラメータが多すぎます (必要 {required}, 指定 {supplied})",
		"mismatch":          "コンポーネント {index} は {value} ですが、テンプレートは {expected} を要求します",
		"wildcard_first":    "先頭のテンプレートスロットは抽出対象にできません",
		"invalid_template":  "テンプレートが不正です: {reason}",
		"parse_error":       "{value} を符号なし整数として解析できません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
