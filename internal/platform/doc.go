// Package platform classifies the host operating system. The classification
// picks the Python interpreter binary name: Unix-like systems ship python3,
// everything else is expected to expose python.
package platform
