package initchecker

import "fmt"

// CheckInit panics on a nil dependency, pairs of (name, value).
func CheckInit(args ...interface{}) {
	for i := 0; i+1 < len(args); i += 2 {
		name, _ := args[i].(string)
		if args[i+1] == nil {
			panic(fmt.Sprintf("dependency %q is not initialized", name))
		}
	}
}
