package early_alloc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"early_alloc"
)

func TestNewDefaultPageSize(t *testing.T) {
	a := early_alloc.New(0)
	assert.Equal(t, uintptr(0x1000), a.PageSize())

	b := early_alloc.New(1 << 14)
	assert.Equal(t, uintptr(1<<14), b.PageSize())
}

func TestSentinelErrors(t *testing.T) {
	a := early_alloc.New(0)
	a.Init(0x1000, 0x1000)
	_, err := a.Alloc(0x2000, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, early_alloc.ErrNoMemory))
	assert.ErrorIs(t, a.AddMemory(0x2000, 0x1000), early_alloc.ErrNoMemory)
}

// nil 容忍：与其它包的 facade 约定一致，nil 接收者不 panic。
func TestNilAllocator(t *testing.T) {
	var a *early_alloc.Allocator
	assert.False(t, a.IsInit())
	a.Init(0x1000, 0x1000)
	_, err := a.Alloc(1, 1)
	assert.ErrorIs(t, err, early_alloc.ErrNoMemory)
	a.Dealloc(0, 0, 0)
	a.DeallocPages(0, 0)
	assert.Zero(t, a.TotalBytes())
	assert.Zero(t, a.UsedBytes())
	assert.Zero(t, a.AvailableBytes())
	assert.Zero(t, a.TotalPages())
	assert.Zero(t, a.UsedPages())
	assert.Zero(t, a.AvailablePages())
	assert.Zero(t, a.PageSize())
	_, err = a.AllocPages(1, 12)
	assert.ErrorIs(t, err, early_alloc.ErrNoMemory)
	assert.ErrorIs(t, a.AddMemory(0, 0), early_alloc.ErrNoMemory)
}
