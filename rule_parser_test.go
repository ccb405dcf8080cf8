package fileclassify_test

import (
	"testing"

	fileclassify "github.com/fileclassify/fileclassify"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testRuleParser(t *testing.T, context spec.G, it spec.S) {
	var Expect = NewWithT(t).Expect

	context("ParseRuleString", func() {
		it("parses fields separated by >>", func() {
			rules := fileclassify.ParseRuleString("Category >> Year >> Month")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "category"},
				{Key: "year"},
				{Key: "month"},
			}))
		})

		it("parses enum constraints in brackets", func() {
			rules := fileclassify.ParseRuleString("Category [Contract, Invoice, Report] >> Year")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "category", Options: []string{"Contract", "Invoice", "Report"}},
				{Key: "year"},
			}))
		})

		it("splits options on full-width commas", func() {
			rules := fileclassify.ParseRuleString("类型 [合同，发票，报告]")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "category", Options: []string{"合同", "发票", "报告"}},
			}))
		})

		it("maps Chinese field names to canonical keys", func() {
			rules := fileclassify.ParseRuleString("类型 >> 年份 >> 月份 >> 原文件名 >> 摘要")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "category"},
				{Key: "year"},
				{Key: "month"},
				{Key: "original_name"},
				{Key: "summary"},
			}))
		})

		it("passes unrecognized field names through lowercased", func() {
			rules := fileclassify.ParseRuleString("Department >> Year")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "department"},
				{Key: "year"},
			}))
		})

		it("drops empty fields and trims whitespace", func() {
			rules := fileclassify.ParseRuleString("  Category  >>  >> Year ")
			Expect(rules).To(Equal([]fileclassify.Rule{
				{Key: "category"},
				{Key: "year"},
			}))
		})

		context("when the rule string is blank", func() {
			it("returns no rules", func() {
				Expect(fileclassify.ParseRuleString("")).To(BeNil())
				Expect(fileclassify.ParseRuleString("   ")).To(BeNil())
			})
		})

		context("when brackets contain only separators", func() {
			it("yields a rule without options", func() {
				rules := fileclassify.ParseRuleString("Category [ , ]")
				Expect(rules).To(Equal([]fileclassify.Rule{
					{Key: "category"},
				}))
			})
		})
	})
}
