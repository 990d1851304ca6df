// Package bump 实现双端 bump 早期分配器：在正式的 bytes/pages 分配器
// 可用之前使用。单块连续区间被三个游标切成三段：
//
//	[ bytes-used | avail-area | pages-used ]
//	|            | -->    <-- |            |
//	start       bPos         pPos         end
//
// bytes 区从低地址向上分配，pages 区从高地址向下分配。
// bytes 区用 count 记录存活分配数，归零时一次性整体回收；
// pages 区在分配器生命周期内永不回收。
//
// 每个游标的推进都是单字段 CAS 重试提交，两次并发的同类分配不会
// 返回重叠区间。对侧游标的边界检查在循环内重新读取，但当两端同时
// 挤进最后一小段空隙时仍需调用方串行化。
package bump

import (
	"sync/atomic"

	"early_alloc/internal/errs"
	"early_alloc/util"
)

// Early 双端 bump 分配器。零值未初始化，Init 之后可用。
type Early struct {
	pageSize uintptr

	start atomic.Uintptr
	size  atomic.Uintptr
	bPos  atomic.Uintptr
	pPos  atomic.Uintptr
	count atomic.Uintptr
}

// New 创建未初始化的分配器。pageSize 必须是 2 的幂。
func New(pageSize uintptr) *Early {
	return &Early{pageSize: pageSize}
}

// PageSize 返回绑定的页大小。
func (a *Early) PageSize() uintptr { return a.pageSize }

// Init 绑定管理区间 [start, start+size)。重复调用等价于整体重置，
// 会丢弃全部分配记录，调用方必须保证此时没有仍被引用的旧分配。
func (a *Early) Init(start, size uintptr) {
	a.start.Store(start)
	a.size.Store(size)
	a.bPos.Store(start)
	a.pPos.Store(start + size)
	a.count.Store(0)
}

// IsInit 返回是否已初始化。
func (a *Early) IsInit() bool { return a.size.Load() > 0 }

// AddMemory 永远返回 ErrNoMemory：该分配器不支持扩容，
// 区间耗尽后应由上层切换到正式分配器。
func (a *Early) AddMemory(_, _ uintptr) error { return errs.ErrNoMemory }

// Alloc 从 bytes 区分配 size 字节，起始地址按 align（2 的幂）向上对齐。
// 对齐后的末尾越过 pPos 则返回 ErrNoMemory，不改动任何状态。
func (a *Early) Alloc(size, align uintptr) (uintptr, error) {
	for {
		bPos := a.bPos.Load()
		addr := util.AlignUp(bPos, align)
		end := addr + size
		if end > a.pPos.Load() {
			return 0, errs.ErrNoMemory
		}
		if a.bPos.CompareAndSwap(bPos, end) {
			a.count.Add(1)
			return addr, nil
		}
	}
}

// Dealloc 释放一次 bytes 分配。bump 方案下无法按地址释放单块，
// 参数不被检查；count 从 1 降到 0 时把 bPos 拨回 start，整体回收 bytes 区。
// count 已为 0 时是安全的空操作（容忍多余/重复的 free）。
func (a *Early) Dealloc(_, _, _ uintptr) {
	for {
		c := a.count.Load()
		if c == 0 {
			return
		}
		if a.count.CompareAndSwap(c, c-1) {
			if c == 1 {
				a.bPos.Store(a.start.Load())
			}
			return
		}
	}
}

// TotalBytes 返回区间总长度。
func (a *Early) TotalBytes() uintptr { return a.size.Load() }

// UsedBytes 返回 bytes 区已用长度。
func (a *Early) UsedBytes() uintptr { return a.bPos.Load() - a.start.Load() }

// AvailableBytes 返回中间空闲区长度。
func (a *Early) AvailableBytes() uintptr { return a.pPos.Load() - a.bPos.Load() }

// AllocPages 从 pages 区分配 numPages 页，起始地址按 1<<alignPow2 向下对齐。
// pPos-need 回绕时 addr 会大于 pPos，由上界检查兜住。
func (a *Early) AllocPages(numPages uintptr, alignPow2 uint) (uintptr, error) {
	align := uintptr(1) << alignPow2
	need := numPages * a.pageSize
	for {
		pPos := a.pPos.Load()
		addr := util.AlignDown(pPos-need, align)
		if addr < a.bPos.Load() || addr > pPos {
			return 0, errs.ErrNoMemory
		}
		if a.pPos.CompareAndSwap(pPos, addr) {
			return addr, nil
		}
	}
}

// DeallocPages 有意为空：pages 区承载页表、栈等长生命周期结构，永不回收。
func (a *Early) DeallocPages(_, _ uintptr) {}

// TotalPages 返回区间折合的总页数。
func (a *Early) TotalPages() uintptr { return a.size.Load() / a.pageSize }

// UsedPages 返回 pages 区已用页数。
func (a *Early) UsedPages() uintptr {
	return (a.start.Load() + a.size.Load() - a.pPos.Load()) / a.pageSize
}

// AvailablePages 返回中间空闲区折合的页数。
func (a *Early) AvailablePages() uintptr { return (a.pPos.Load() - a.bPos.Load()) / a.pageSize }
