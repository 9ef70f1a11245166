// check_assets 校验嵌入资源之间的引用是否完整
//
// 用法：
//
//	go run ./cmd/check_assets            # 在仓库根目录运行
//	go run ./cmd/check_assets -root path # 指定资源根目录
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/farmshop/pkg/embedded"
)

func main() {
	root := flag.String("root", ".", "directory containing assets/ and data/")
	flag.Parse()

	fsys := os.DirFS(*root)
	embedded.Init(fsys, fsys)

	if failures := checkAssets(os.Stdout); failures > 0 {
		fmt.Printf("\n❌ %d problem(s) found\n", failures)
		os.Exit(1)
	}
	fmt.Printf("\n✅ all checks passed\n")
}
