package hand_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHand(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hand Suite")
}
