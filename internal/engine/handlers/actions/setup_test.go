package actions

import (
	"os"
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}
