package services

import (
	"os"
	"testing"

	"github.com/ChristelOko/BarometreHED-sub001/config"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}
