// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "habit-tracker"
	AppVersion = "0.3.0"
)

// 曜日・期間変更時のポリシー
const (
	PolicyReconcile = "reconcile"
	PolicyReject    = "reject"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultAuthEnabled          = true
	DefaultSkipForward          = false
	DefaultMaxCalendarDays      = 366
	DefaultRematerializeWorkers = 4
	DefaultAccessTokenTTL       = 30 * time.Minute
	DefaultRefreshTokenTTL      = 30 * 24 * time.Hour
	DefaultRateLimitRPS         = 20.0
	DefaultRateLimitBurst       = 40
)
