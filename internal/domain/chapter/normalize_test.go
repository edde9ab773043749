package chapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"编制依据", "编制依据"},
		{"一、编制依据", "编制依据"},
		{"十、绿色施工与环境保护", "绿色施工与环境保护"},
		{"第三章 施工组织机构", "施工组织机构"},
		{"第十二章 附录", "附录"},
		{"3.2.1 基础开挖", "基础开挖"},
		{"1 工程概况", "工程概况"},
		{"(1) 技术准备", "技术准备"},
		{"（2）现场准备", "现场准备"},
		{"① 测量放线", "测量放线"},
		// Stacked prefixes reduce fully.
		{"第三章 3.1 施工准备", "施工准备"},
		// Chapter words are stripped anywhere, not only at the front.
		{"附录 第三章 补充条款", "附录 补充条款"},
		{"  工程概况  ", "工程概况"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTitle(tc.in), tc.in)
	}
}

func TestSectionID(t *testing.T) {
	assert.Equal(t, "3.2.1", SectionID("3.2.1 基础开挖"))
	assert.Equal(t, "1", SectionID("1 工程概况"))
	assert.Equal(t, "", SectionID("一、编制依据"))
	assert.Equal(t, "", SectionID("工程概况"))
}

func TestOrdinalNumber(t *testing.T) {
	assert.Equal(t, 1, OrdinalNumber("一、编制依据"))
	assert.Equal(t, 6, OrdinalNumber("六、施工方法及工艺要求"))
	assert.Equal(t, 10, OrdinalNumber("十、绿色施工与环境保护"))
	assert.Equal(t, 0, OrdinalNumber("3.1 施工准备"))
	assert.Equal(t, 0, OrdinalNumber("工程概况"))
}

//Personal.AI order the ending
