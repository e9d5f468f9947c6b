//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.DEFAULTCORPUSFORMAT, c.CorpusFormat)
	assert.Equal(t, vv.MINDOCTOKENS, c.MinDocTokens)
	assert.Empty(t, c.CorpusLabels)
}

func TestConfigAtLaunchFlags(t *testing.T) {
	oldargs := os.Args
	defer func() { os.Args = oldargs }()

	os.Args = []string{"cgs", "-cl", "caes,cic", "-mt", "5", "-lt", "7", "-q"}
	ConfigAtLaunch()

	assert.Equal(t, []string{"caes", "cic"}, Config.CorpusLabels)
	assert.Equal(t, 5, Config.MinDocTokens)
	assert.Equal(t, 7, Config.LdaTopics)
	assert.True(t, Config.QuietStart)
}
