package early_alloc

import (
	"early_alloc/consts"
	"early_alloc/internal/bump"
	"early_alloc/internal/errs"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrNoMemory    = errs.ErrNoMemory
	ErrBadArgument = errs.ErrBadArgument
)

// Allocator 双端早期分配器：bytes 从低地址向上、pages 从高地址向下，
// 共用一块固定区间。用于正式堆/页帧分配器就绪之前的启动阶段。
type Allocator struct {
	a *bump.Early
}

// New 创建分配器。pageSize 必须是 2 的幂，传 0 取 consts.DefaultPageSize。
func New(pageSize uintptr) *Allocator {
	if pageSize == 0 {
		pageSize = consts.DefaultPageSize
	}
	return &Allocator{a: bump.New(pageSize)}
}

// Init 绑定管理区间 [start, start+size)。重复调用等价于整体重置，
// 调用方必须保证此时没有仍被引用的旧分配。
func (al *Allocator) Init(start, size uintptr) {
	if al == nil || al.a == nil {
		return
	}
	al.a.Init(start, size)
}

// IsInit 返回是否已初始化。
func (al *Allocator) IsInit() bool {
	if al == nil || al.a == nil {
		return false
	}
	return al.a.IsInit()
}

// AddMemory 永远返回 ErrNoMemory：该分配器不支持扩容。
func (al *Allocator) AddMemory(start, size uintptr) error {
	if al == nil || al.a == nil {
		return errs.ErrNoMemory
	}
	return al.a.AddMemory(start, size)
}

// PageSize 返回绑定的页大小。
func (al *Allocator) PageSize() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.PageSize()
}

// Alloc 从 bytes 区分配 size 字节，按 align（2 的幂）对齐。
func (al *Allocator) Alloc(size, align uintptr) (uintptr, error) {
	if al == nil || al.a == nil {
		return 0, errs.ErrNoMemory
	}
	return al.a.Alloc(size, align)
}

// Dealloc 释放一次 bytes 分配；存活计数归零时整体回收 bytes 区。
func (al *Allocator) Dealloc(pos, size, align uintptr) {
	if al == nil || al.a == nil {
		return
	}
	al.a.Dealloc(pos, size, align)
}

func (al *Allocator) TotalBytes() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.TotalBytes()
}

func (al *Allocator) UsedBytes() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.UsedBytes()
}

func (al *Allocator) AvailableBytes() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.AvailableBytes()
}

// AllocPages 从 pages 区分配 numPages 页，按 1<<alignPow2 对齐。
func (al *Allocator) AllocPages(numPages uintptr, alignPow2 uint) (uintptr, error) {
	if al == nil || al.a == nil {
		return 0, errs.ErrNoMemory
	}
	return al.a.AllocPages(numPages, alignPow2)
}

// DeallocPages 有意为空：pages 区永不回收。
func (al *Allocator) DeallocPages(pos, numPages uintptr) {
	if al == nil || al.a == nil {
		return
	}
	al.a.DeallocPages(pos, numPages)
}

func (al *Allocator) TotalPages() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.TotalPages()
}

func (al *Allocator) UsedPages() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.UsedPages()
}

func (al *Allocator) AvailablePages() uintptr {
	if al == nil || al.a == nil {
		return 0
	}
	return al.a.AvailablePages()
}
