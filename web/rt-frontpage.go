//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"embed"
	"fmt"
	"net/http"
	"text/template"

	"github.com/labstack/echo/v4"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

//go:embed emb
var efs embed.FS

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	const (
		EHTM = "emb/frontpage.html"
	)

	j, e := efs.ReadFile(EHTM)
	if e != nil {
		Msg.WARN(fmt.Sprintf("RtFrontpage() can't find %s", EHTM))
		return c.String(http.StatusNotFound, "")
	}

	subs := map[string]interface{}{
		"version":   vv.VERSION,
		"shortname": vv.SHORTNAME,
		"longname":  vv.MYNAME,
		"project":   vv.PROJURL,
	}

	tmpl, e := template.New("fp").Parse(string(j))
	Msg.EC(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	Msg.EC(err)

	return c.HTML(http.StatusOK, b.String())
}

// RtEmbCSS - send "cgs.css"
func RtEmbCSS(c echo.Context) error {
	const (
		ECSS = "emb/cgs.css"
	)

	j, e := efs.ReadFile(ECSS)
	if e != nil {
		Msg.WARN(fmt.Sprintf("RtEmbCSS() can't find %s", ECSS))
		return c.String(http.StatusNotFound, "")
	}

	c.Response().Header().Add("Content-Type", "text/css")
	return c.String(http.StatusOK, string(j))
}
