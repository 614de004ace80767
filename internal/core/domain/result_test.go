package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/resweep/internal/core/domain"
)

func TestAnalysisResult_Partitions(t *testing.T) {
	res := &domain.AnalysisResult{
		Entries: []domain.ResourceEntry{
			{Key: greeting, References: []domain.ReferenceRecord{{FileName: "a.cs", Count: 2}}},
			{Key: farewell},
			{Key: title, References: []domain.ReferenceRecord{{FileName: "b.cs", Count: 1}}},
		},
	}

	unused := res.Unused()
	used := res.Used()

	assert.Len(t, unused, 1)
	assert.Equal(t, farewell, unused[0].Key)
	assert.Len(t, used, 2)
	assert.Equal(t, greeting, used[0].Key)
	assert.Equal(t, title, used[1].Key)
}

func TestAnalysisResult_Fingerprint(t *testing.T) {
	a := &domain.AnalysisResult{Entries: []domain.ResourceEntry{
		{Key: greeting, References: []domain.ReferenceRecord{{FileName: "a.cs", Count: 2}}},
	}}
	b := &domain.AnalysisResult{Entries: []domain.ResourceEntry{
		{Key: greeting, References: []domain.ReferenceRecord{{FileName: "a.cs", Count: 2}}},
	}}
	c := &domain.AnalysisResult{Entries: []domain.ResourceEntry{
		{Key: greeting, References: []domain.ReferenceRecord{{FileName: "a.cs", Count: 3}}},
	}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestResourceKey_String(t *testing.T) {
	assert.Equal(t, "Strings.Greeting", greeting.String())
}

func TestUsageSet_Add(t *testing.T) {
	u := domain.UsageSet{}
	u.Add(greeting, 2)
	u.Add(greeting, 1)
	u.Add(farewell, 0)

	assert.Equal(t, domain.UsageSet{greeting: 3}, u)
}
