package key

// KeyEvent は1回のキー入力を表す
type KeyEvent struct {
	Type KeyEventType
	Rune rune // 数字および不正な文字の場合
	Key  Key  // 特殊キーの場合
}

// KeyEventType はキーイベントの種類を表す
type KeyEventType int

const (
	KeyEventDigit KeyEventType = iota + 1 // 1から開始
	KeyEventSpecial
	KeyEventIllegal
)

// Key は特殊キーの種類を表す
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEsc
	KeyDelete // 'd'キー。末尾の1桁を削除する
)
