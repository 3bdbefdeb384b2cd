package ui

import (
	"time"

	"github.com/olivier-w/polytone/internal/export"
)

type frameMsg time.Time

type exportedMsg struct {
	result export.Result
	err    error
}

type statusExpiredMsg struct{}
