package util

// AlignUp 把 pos 向上对齐到 align，align 必须是 2 的幂。
func AlignUp(pos, align uintptr) uintptr {
	return (pos + align - 1) &^ (align - 1)
}

// AlignDown 把 pos 向下对齐到 align，align 必须是 2 的幂。
func AlignDown(pos, align uintptr) uintptr {
	return pos &^ (align - 1)
}

// IsPowerOfTwo 判断 n 是否为 2 的幂。
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}
