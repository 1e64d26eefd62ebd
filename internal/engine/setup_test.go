package engine

import (
	"os"
	"testing"

	"verdant-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
