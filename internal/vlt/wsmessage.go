//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vishal5498/CorporaGoServer/internal/lnch"
	"github.com/vishal5498/CorporaGoServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// WEBSOCKET INFRASTRUCTURE: see https://tutorialedge.net/projects/chat-system-in-go-and-react/part-4-handling-multiple-clients/
//

type PollData struct {
	Stage     string `json:"Stage"`
	Msg       string `json:"Statusmessage"`
	Elapsed   string `json:"Elapsed"`
	ID        string `json:"ID"`
	Iteration int
	JType     string
}

type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
	ReadID    chan string
}

type WSJSOut struct {
	V     string `json:"value"`
	ID    string `json:"ID"`
	Close string `json:"close"`
}

// ReceiveID - get the job id from the client; record it; then exit
func (c *WSClient) ReceiveID() {
	const (
		FAIL1 = `WSClient.ReceiveID() failed`
		FAIL2 = `WSClient.ReceiveID() never received the job id`
	)

	quit := time.Now().Add(time.Second * 1)

	for {
		_, m, err := c.Conn.ReadMessage()
		if err != nil {
			Msg.FYI(FAIL1)
			return
		}

		if len(m) != 0 {
			id := string(m)
			id = strings.Replace(id, `"`, "", -1)
			c.ID = id
			c.Pool.ReadID <- id
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(FAIL2)
			break
		}
	}
}

// WSMessageLoop - output the constantly updated analysis progress to the websocket; then exit
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL    = `WSClient.WSMessageLoop() never found '%s' in the JobMap`
		SUCCESS = `WSClient.WSMessageLoop() found '%s' in the JobMap`
	)

	getjobinfo := func() WSJobInfo {
		responder := WSJIReply{Key: c.ID, Response: make(chan WSJobInfo)}
		WSInfo.RequestInfo <- responder
		return <-responder.Response
	}

	// wait for the job to exist
	quit := time.Now().Add(time.Second * 1)

	for {
		jobinfo := getjobinfo()
		if jobinfo.JobCount != 0 && jobinfo.Exists {
			Msg.FYI(fmt.Sprintf(SUCCESS, c.ID))
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(fmt.Sprintf(FAIL, c.ID))
			break
		}
	}

	ji := getjobinfo()

	var pd PollData
	pd.JType = ji.JType

	// loop until the analysis finishes
	for {
		jobinfo := getjobinfo()
		if jobinfo.Exists {
			pd.Stage = jobinfo.Stage
			pd.Msg = jobinfo.Summary
			pd.Iteration = jobinfo.Iteration
		} else {
			break
		}

		pd.Elapsed = fmt.Sprintf("%.1fs", time.Now().Sub(jobinfo.Launched).Seconds())

		jso := &WSJSOut{
			V:     formatpoll(pd),
			ID:    c.ID,
			Close: "open",
		}

		c.Pool.JSO <- jso
		time.Sleep(vv.WSPOLLINGPAUSE)
	}
	WebsocketPool.Remove <- c
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only called once at app startup)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "Starting polling loop for %s"
		MSG2 = "WSPool client failed on WriteMessage()"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				Msg.EC(y)
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					Msg.WARN(MSG2)
					delete(pool.ClientMap, cl)
				}
			}
		}
	}

	for {
		select {
		case id := <-pool.Add:
			pool.ClientMap[id] = true
		case id := <-pool.Remove:
			delete(pool.ClientMap, id)
		case id := <-pool.ReadID:
			Msg.PEEK(fmt.Sprintf(MSG1, id))
		case wrt := <-pool.JSO:
			writemsg(wrt)
		}
	}
}

// WSFillNewPool - build a new WSPool (one and only one built at app startup)
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
		ReadID:    make(chan string),
	}
}

// formatpoll - build HTML to send to the JS on the other side
func formatpoll(pd PollData) string {
	// example:
	// Modeling <span class="sought">»8 topics«</span>&nbsp;(12.3s)<br>
	// <span class="smallerthannormal">training run 4 of 15</span>

	const (
		EL  = `&nbsp;(%s)<br>`
		ST  = `<span class="smallerthannormal">%s</span>`
		ITR = `<span class="smallerthannormal">iteration %d</span>`
	)

	htm := pd.Msg
	htm += fmt.Sprintf(EL, pd.Elapsed)

	if pd.Stage != "" {
		htm += fmt.Sprintf(ST, pd.Stage)
	}

	if pd.Iteration != 0 {
		htm += fmt.Sprintf(ITR, pd.Iteration)
	}

	return htm
}
