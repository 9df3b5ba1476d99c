package i18n

type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
)

var currentLang = English

type Messages struct {
	// General
	Error      string
	Notes      string
	Note       string
	NoNotes    string
	CreatedAt  string
	NotesCount string

	// Modes
	ModeList   string
	ModeEdit   string
	ModeSearch string

	// Dialogs
	NewNote           string
	EditNote          string
	DeleteNote        string
	DeleteConfirm     string
	Search            string
	SearchPlaceholder string
	NotePlaceholder   string
	Copied            string

	// Actions
	EscCancel string

	// Keys descriptions (short)
	KeyUp     string
	KeyDown   string
	KeyOpen   string
	KeyNew    string
	KeyDelete string
	KeySearch string
	KeySave   string
	KeyCancel string
	KeyCopy   string
	KeyHelp   string
	KeyQuit   string
}

var translations = map[Language]Messages{
	English: {
		Error:      "Error",
		Notes:      "Notes",
		Note:       "Note",
		NoNotes:    "No notes yet",
		CreatedAt:  "Created:",
		NotesCount: "Notes:",

		ModeList:   "LIST",
		ModeEdit:   "EDIT",
		ModeSearch: "SEARCH",

		NewNote:           "New Note",
		EditNote:          "Edit Note",
		DeleteNote:        "Delete Note",
		DeleteConfirm:     "Delete '%s'?",
		Search:            "Search",
		SearchPlaceholder: "Search...",
		NotePlaceholder:   "Write here...",
		Copied:            "Copied",

		EscCancel: "[Esc] Cancel",

		KeyUp:     "Up",
		KeyDown:   "Down",
		KeyOpen:   "Open note",
		KeyNew:    "New note",
		KeyDelete: "Delete note",
		KeySearch: "Search",
		KeySave:   "Save and close",
		KeyCancel: "Discard edits",
		KeyCopy:   "Copy text",
		KeyHelp:   "Help",
		KeyQuit:   "Quit",
	},
	Japanese: {
		Error:      "エラー",
		Notes:      "メモ一覧",
		Note:       "メモ",
		NoNotes:    "メモがありません",
		CreatedAt:  "作成日:",
		NotesCount: "メモ数:",

		ModeList:   "一覧",
		ModeEdit:   "編集",
		ModeSearch: "検索",

		NewNote:           "新しいメモ",
		EditNote:          "メモを編集",
		DeleteNote:        "メモを削除",
		DeleteConfirm:     "「%s」を削除しますか?",
		Search:            "検索",
		SearchPlaceholder: "検索...",
		NotePlaceholder:   "ここに入力...",
		Copied:            "コピーしました",

		EscCancel: "[Esc] キャンセル",

		KeyUp:     "上へ",
		KeyDown:   "下へ",
		KeyOpen:   "メモを開く",
		KeyNew:    "新規メモ",
		KeyDelete: "メモを削除",
		KeySearch: "検索",
		KeySave:   "保存して閉じる",
		KeyCancel: "編集を破棄",
		KeyCopy:   "テキストをコピー",
		KeyHelp:   "ヘルプ",
		KeyQuit:   "終了",
	},
}

func SetLanguage(lang Language) {
	if _, ok := translations[lang]; ok {
		currentLang = lang
	}
}

func GetLanguage() Language {
	return currentLang
}

func T() Messages {
	return translations[currentLang]
}
