//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在打开 gdata 之前准备 Android 的偏好目录
// gdata 使用 /data/data/{package}/ 作为根目录，但不会创建子目录
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("cannot resolve Android package name")
	}

	prefsDir := filepath.Join(dir, "prefs")
	if err := os.MkdirAll(prefsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", prefsDir, err)
	}

	probe := filepath.Join(prefsDir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", prefsDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用的私有数据目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	raw, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg, _, _ := strings.Cut(string(raw), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
