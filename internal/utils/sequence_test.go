package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/utils"
)

func TestFormatSequenceNumber(t *testing.T) {
	assert.Equal(t, "INV-001", utils.FormatSequenceNumber("INV", 1))
	assert.Equal(t, "PO-042", utils.FormatSequenceNumber("PO", 42))
	assert.Equal(t, "E-100", utils.FormatSequenceNumber("E", 100))
	assert.Equal(t, "PO-1234", utils.FormatSequenceNumber("PO", 1234))
}
