//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// Map 创建 size 字节的匿名可读写私有映射。
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap 解除映射。
func Unmap(data []byte) error {
	return unix.Munmap(data)
}
