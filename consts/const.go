package consts

// Page Const
const (
	DefaultPageSize uintptr = 0x1000 // 4 KiB，传 0 给 New 时的默认值
)
