package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // cap on a single corpus entry
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".ts" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds covers the syntax surface the stripper cares about so the
// fuzzer starts from structurally interesting inputs rather than noise.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"const x: number = 1;\n",
		"let s = `a${1 + 2}b`;\n",
		"function id<T>(v: T): T { return v; }\n",
		"interface Point { x: number; y: number; }\n",
		"type Pair<A, B> = [A, B];\n",
		"enum Color { Red, Green = 2, Blue }\n",
		"const enum Flag { On = 1, Off = 0 }\n",
		"namespace App { export const version = 1; }\n",
		"declare const global: unknown;\n",
		"class Box<T> {\n  constructor(private readonly value: T) {}\n  get(): T { return this.value; }\n}\n",
		"abstract class Shape { abstract area(): number; }\n",
		"import type { Foo } from \"./foo\";\nimport { bar } from \"./bar\";\nexport { bar };\n",
		"export default function main(): void {}\n",
		"const v = obj!.field as string;\n",
		"const w = raw satisfies number;\n",
		"async function load(): Promise<string> { return await fetchIt(); }\n",
		"function* gen(): Generator<number> { yield 1; }\n",
		"for (const [k, v] of entries) { console.log(k, v); }\n",
		"try { risky(); } catch (e) { report(e); } finally { done(); }\n",
		"switch (tag) { case 1: break; default: other(); }\n",
		"const arrow = (a: number, b: number): number => a + b;\n",
		"label: while (true) { break label; }\n",
		"const { a, b = 2, ...rest } = opts;\n",
	}
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
