package chapter

import (
	"github.com/turtacn/ConstrDoc-Intelligence/pkg/types/taxonomy"
)

// DefaultRuleSource returns the built-in rule corpus for the standard
// ten-chapter construction-method document structure.  The declaration order
// of the categories is part of the contract: within one match tier the first
// declared category wins ties.
//
// The keyword lists were tuned against a corpus of power-transmission and
// substation construction-method documents; edit with care and re-run the
// fixed-corpus regression test after any change.
func DefaultRuleSource() *RuleSource {
	return &RuleSource{
		Categories: []CategorySource{
			{
				ID:       taxonomy.CategoryCh1,
				Name:     "一、编制依据",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"编制依据",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"编制说明", "编制目的", "编制原则", "编写依据",
						"引用标准", "引用文件", "参考文件", "适用范围",
					}},
					{Type: RuleTypeRegex, Patterns: []string{
						`依据.{0,4}(文件|标准|规范)`,
					}},
				},
				Exclusions: []string{
					"编制单位", "编制人",
				},
			},
			{
				ID:       taxonomy.CategoryCh2,
				Name:     "二、工程概况",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"工程概况",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"工程概述", "工程简介", "项目概况", "项目简介",
						"工程特点", "工程范围", "工程简况", "概况",
					}},
				},
				SubSectionIndicators: []string{
					"工程规模", "自然条件", "地理位置",
				},
			},
			{
				ID:       taxonomy.CategoryCh3,
				Name:     "三、施工组织机构及职责",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"施工组织机构", "组织机构及职责",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"组织机构", "项目组织", "管理组织", "组织体系",
						"岗位职责", "管理人员", "职责分工", "管理职责",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh4,
				Name:     "四、施工安排与进度计划",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"施工安排", "进度计划",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"施工计划", "施工进度", "施工工期", "工期计划",
						"工期规划", "工期安排", "进度安排", "总体安排",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh5,
				Name:     "五、施工准备",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"施工准备",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"准备工作", "技术准备", "资源配置", "人力资源",
						"机具配置", "现场准备", "开工条件",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh6,
				Name:     "六、施工方法及工艺要求",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"施工方法", "施工工艺",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"施工技术", "施工方案", "工艺要求", "工艺流程",
						"工艺技术", "主要工序", "作业方法", "技术要求",
						"基础施工", "安装施工", "操作要点",
					}},
					{Type: RuleTypeRegex, Patterns: []string{
						`(基础|杆塔|架线|电缆|接地)工程`,
						`(组塔|放线|紧线|附件安装)`,
					}},
				},
				SubSectionIndicators: []string{
					"工序", "施工要点", "操作步骤",
				},
			},
			{
				ID:       taxonomy.CategoryCh7,
				Name:     "七、质量管理与控制措施",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"质量管理", "质量控制",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"质量保证", "质量检验", "质量工艺", "质量通病",
						"质量标准", "质量要求", "成品保护", "验收标准",
						"质量目标",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh8,
				Name:     "八、安全文明施工管理",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"安全文明施工", "安全管理",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"安全文明", "文明施工", "安全措施", "安全风险",
						"安全生产", "安全检查", "安全控制", "危险源",
						"危险点", "安健环", "监测监控", "安全保证",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh9,
				Name:     "九、应急预案与处置措施",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"应急预案", "应急处置",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"应急措施", "应急响应", "应急救援", "应急物资",
						"应急演练", "事故处置", "事故应急", "抢险",
					}},
				},
			},
			{
				ID:       taxonomy.CategoryCh10,
				Name:     "十、绿色施工与环境保护",
				Required: true,
				Rules: []RuleEntry{
					{Type: RuleTypeExact, Keywords: []string{
						"绿色施工", "环境保护",
					}},
					{Type: RuleTypeVariant, Keywords: []string{
						"环保措施", "环境管理", "环境因素", "水土保护",
						"水土保持", "节能减排", "扬尘控制", "四节一环保",
					}},
				},
			},
		},
		GlobalExclusions: GlobalExclusionSource{
			CoverPatterns: []string{
				`电网.*公司`,
				`有限公司`,
				`kV.*(工程|线路|变电站)`,
				`变电站.*工程`,
			},
			AdminPatterns: []string{
				`^目录$`,
				`报审表`, `报验表`, `审批表`, `签收表`,
				`会签`, `封面`, `扉页`,
			},
			SignaturePatterns: []string{
				`[：:]\s*$`,
				`^(编制人|审核人|批准人|校核人)`,
				`成员[:：]`,
			},
		},
	}
}

//Personal.AI order the ending
