package early_alloc

// 上层内核分配框架约定的三组能力接口，任何分配器按需实现其中若干组。

// BaseAllocator 基础生命周期：绑定区间、查询初始化状态、扩容。
type BaseAllocator interface {
	Init(start, size uintptr)
	AddMemory(start, size uintptr) error
	IsInit() bool
}

// ByteAllocator 任意大小、任意对齐（2 的幂）的字节分配。
type ByteAllocator interface {
	Alloc(size, align uintptr) (uintptr, error)
	Dealloc(pos, size, align uintptr)
	TotalBytes() uintptr
	UsedBytes() uintptr
	AvailableBytes() uintptr
}

// PageAllocator 固定页大小、按 2 的幂对齐的页分配。
type PageAllocator interface {
	PageSize() uintptr
	AllocPages(numPages uintptr, alignPow2 uint) (uintptr, error)
	DeallocPages(pos, numPages uintptr)
	TotalPages() uintptr
	UsedPages() uintptr
	AvailablePages() uintptr
}

var (
	_ BaseAllocator = (*Allocator)(nil)
	_ ByteAllocator = (*Allocator)(nil)
	_ PageAllocator = (*Allocator)(nil)
)
