package region

import (
	"unsafe"

	"early_alloc/internal/errs"
	"early_alloc/internal/mmap"
)

// Region 一段匿名映射内存，充当捐给分配器的地址区间。
// 早期启动场景里这段内存由 bootloader/固件划出，用户态下用 mmap 顶替。
type Region struct {
	data []byte
}

// Map 映射 size 字节的匿名内存。
func Map(size int) (*Region, error) {
	if size <= 0 {
		return nil, errs.ErrBadArgument
	}
	data, err := mmap.Map(size)
	if err != nil {
		return nil, err
	}
	return &Region{data: data}, nil
}

// Start 返回区间起始地址，Close 后勿用。
func (r *Region) Start() uintptr {
	if r == nil || len(r.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&r.data[0]))
}

// Size 返回区间长度。
func (r *Region) Size() uintptr {
	if r == nil {
		return 0
	}
	return uintptr(len(r.data))
}

// Bytes 返回底层切片（供读写校验），Close 后勿用。
func (r *Region) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.data
}

// Close 解除映射。
func (r *Region) Close() error {
	if r == nil || r.data == nil {
		return nil
	}
	err := mmap.Unmap(r.data)
	r.data = nil
	return err
}
