package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "invalid_enum":
			return "許可されていない値です"
		case "unknown_field":
			return "未知のフィールドです"
		case "not_array":
			return "配列フィールドではありません"
		case "empty_name":
			return "フィールド名が空です"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "missing_options":
			return "選択肢が定義されていません"
		case "duplicate_option":
			return "選択肢が重複しています"
		case "unexpected_options":
			return "この種別に選択肢は指定できません"
		case "unsupported_shape":
			return "サポートされていないスキーマ形式です"
		case "empty_document":
			return "スキーマ定義が空です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "invalid_enum":
			return "value not in option set"
		case "unknown_field":
			return "unknown field"
		case "not_array":
			return "not an array field"
		case "empty_name":
			return "empty field name"
		case "duplicate_field":
			return "duplicate field name"
		case "missing_options":
			return "literal kind requires options"
		case "duplicate_option":
			return "duplicate option"
		case "unexpected_options":
			return "options not allowed for this kind"
		case "unsupported_shape":
			return "unsupported schema shape"
		case "empty_document":
			return "empty schema document"
		}
	}
	return code
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
