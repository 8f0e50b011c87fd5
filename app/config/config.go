package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultCancelNotice = "Cancelled"
)

// Config はダイアログの設定を保持する構造体
type Config struct {
	DebugMode    bool
	BellEnabled  bool
	CancelNotice string // キャンセル時に入力行へ表示する文言
}

// LoadConfig は.envファイルから設定を読み込む
func LoadConfig() *Config {
	// .envファイルを読み込む
	godotenv.Load()

	config := &Config{
		DebugMode:    false,
		BellEnabled:  true,
		CancelNotice: defaultCancelNotice,
	}

	// DEBUG環境変数から設定を読み込む
	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true"
	}

	// BELL環境変数から設定を読み込む
	if bell := os.Getenv("BELL"); bell != "" {
		config.BellEnabled = bell != "0" && bell != "false"
	}

	// CANCEL_NOTICE環境変数から設定を読み込む
	if notice := os.Getenv("CANCEL_NOTICE"); notice != "" {
		config.CancelNotice = notice
	}

	return config
}
