package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// defaultWords is the reference alphabet, 67 entries indexed by position.
// Entry 65 (黄豆) is shadowed by the pad word and entries 64 and 66 sit above
// the 6-bit chunk range — deliberate gaps carried over from the reference
// configuration, not errors.
var defaultWords = []string{
	"香香", "软软", "甜甜", "糯糯", "蜂蜜", "奶油", "腻腻", "酥酥", "脆脆", "滑滑", "嫩嫩",
	"番茄炒可乐", "番茄炒科比", "草莓", "蓝莓", "苹果", "香蕉", "葡萄", "酸酸", "辣辣",
	"爽爽", "咸咸", "鲜鲜", "苦苦", "甘甘", "绵绵", "弹弹", "润润", "油油", "清清",
	"浓浓", "醇醇", "淡淡", "幽幽", "热热乎乎", "冰冰凉凉", "黏黏", "糊糊", "麻麻",
	"橙子", "西瓜", "樱桃", "菠萝", "猕猴桃", "桃子", "梨", "杏", "李子", "西红柿",
	"黄瓜", "胡萝卜", "生菜", "菠菜", "花椰菜", "卷心菜", "洋葱", "大蒜", "土豆", "红薯",
	"南瓜", "玉米", "豌豆", "扁豆", "红豆", "绿豆", "黄豆", "黑豆",
}

const (
	defaultBitWidth = 6
	defaultPadIndex = 65
	defaultPadWord  = "的"
)

// DefaultConfig returns the built-in reference alphabet: 6-bit chunks,
// pad word 的 at index 65.
func DefaultConfig() Config {
	words := make(map[int]string, len(defaultWords))
	for i, w := range defaultWords {
		if i == defaultPadIndex {
			continue
		}
		words[i] = w
	}
	return Config{
		BitWidth: defaultBitWidth,
		PadIndex: defaultPadIndex,
		PadWord:  defaultPadWord,
		Words:    words,
	}
}

// alphabetFile is the on-disk JSON shape. Word indices are decimal strings,
// matching the construction boundary of the original mapping format.
type alphabetFile struct {
	BitWidth int               `json:"bit_width"`
	PadIndex int               `json:"pad_index"`
	PadWord  string            `json:"pad_word"`
	Words    map[string]string `json:"words"`
}

// LoadConfig reads an alphabet file. Missing bit_width defaults to 6.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("codec.LoadConfig: %w", err)
	}
	var f alphabetFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return Config{}, fmt.Errorf("codec.LoadConfig: parse %s: %w", path, err)
	}
	if f.BitWidth == 0 {
		f.BitWidth = defaultBitWidth
	}
	cfg := Config{
		BitWidth: f.BitWidth,
		PadIndex: f.PadIndex,
		PadWord:  f.PadWord,
		Words:    make(map[int]string, len(f.Words)),
	}
	for key, word := range f.Words {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return Config{}, fmt.Errorf("codec.LoadConfig: %s: index %q is not a number", path, key)
		}
		cfg.Words[idx] = word
	}
	return cfg, nil
}
