//go:build !windows

package locator

// WindowsRegistry has no values outside Windows.
type WindowsRegistry struct{}

func (WindowsRegistry) Value(hive, key, name string) (string, bool) {
	return "", false
}
