//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

//
// CHANNEL-BASED JOBINFO REPORTING TO COMMUNICATE PROGRESS BETWEEN ROUTINES: analysis routes write; websocket reads
//

// WSJobInfo - struct used to deliver info about analyses in progress
type WSJobInfo struct {
	ID        string
	Exists    bool
	JobCount  int
	Stage     string
	Summary   string
	Iteration int
	JType     string
	Launched  time.Time
	RealIP    string
	CancelFnc context.CancelFunc
}

// WSJIKVi - WSJobInfoHub helper struct for setting an int Val on the item at map[Key]
type WSJIKVi struct {
	Key string
	Val int
}

// WSJIKVs - WSJobInfoHub helper struct for setting a string Val on the item at map[Key]
type WSJIKVs struct {
	Key string
	Val string
}

// WSJIReply - WSJobInfoHub helper struct for returning the WSJobInfo stored at map[Key]
type WSJIReply struct {
	Key      string
	Response chan WSJobInfo
}

type WSJICount struct {
	Key      string
	Response chan int
}

type WSInfoHubInterface struct {
	UpdateStage     chan WSJIKVs
	UpdateSummMsg   chan WSJIKVs
	UpdateIteration chan WSJIKVi
	RequestInfo     chan WSJIReply
	InsertInfo      chan WSJobInfo
	IPJobCount      chan WSJICount
	Del             chan string
	Reset           chan string
}

// BuildWSInfoHubIf - build the WSInfoHubInterface that will interact with WSJobInfoHub (one and only one built at app startup)
func BuildWSInfoHubIf() *WSInfoHubInterface {
	return &WSInfoHubInterface{
		UpdateStage:     make(chan WSJIKVs, 2*runtime.NumCPU()),
		UpdateSummMsg:   make(chan WSJIKVs, 2*runtime.NumCPU()),
		UpdateIteration: make(chan WSJIKVi, 2*runtime.NumCPU()),
		RequestInfo:     make(chan WSJIReply),
		InsertInfo:      make(chan WSJobInfo),
		IPJobCount:      make(chan WSJICount),
		Del:             make(chan string),
		Reset:           make(chan string),
	}
}

// WSJobInfoHub - the loop that lets you read/write from/to the various WSJobInfo channels via the WSInfo global (a *WSInfoHubInterface)
func WSJobInfoHub() {
	const (
		CANC    = "WSJobInfoHub() reports that '%s' was cancelled"
		FINWAIT = 10
		FINCHK  = 60
	)

	var (
		Allinfo  = make(map[string]WSJobInfo)
		Finished = make(map[string]time.Time)
	)

	reporter := func(r WSJIReply) {
		if _, ok := Allinfo[r.Key]; ok {
			r.Response <- Allinfo[r.Key]
		} else {
			// "false" triggers a break in rt-websocket.go
			r.Response <- WSJobInfo{Exists: false}
		}
	}

	fetchifexists := func(id string) WSJobInfo {
		if _, ok := Allinfo[id]; ok {
			return Allinfo[id]
		} else {
			// any non-zero value for JobCount is fine; the test in rt-websocket.go is just for 0
			return WSJobInfo{ID: id, Exists: true, JobCount: 1, Launched: time.Now()}
		}
	}

	ipcount := func(id string) int {
		count := 0
		for _, v := range Allinfo {
			if v.RealIP == id {
				count++
			}
		}
		return count
	}

	cancelall := func(ip string) {
		for _, v := range Allinfo {
			if v.RealIP == ip && v.CancelFnc != nil {
				v.CancelFnc()
				Msg.PEEK(fmt.Sprintf(CANC, v.ID))
			}
		}
	}

	// a respawn after deletion is rare but possible when a poller is slow; refuse to store the dead
	storeunlessfinished := func(ji WSJobInfo) {
		if _, ok := Finished[ji.ID]; !ok {
			Allinfo[ji.ID] = ji
		}
	}

	// storeunlessfinished() requires a cleanup function too...
	cleanfinished := func() {
		for {
			for f := range Finished {
				ft := Finished[f]
				later := ft.Add(time.Second * FINWAIT)
				if time.Now().After(later) {
					delete(Finished, f)
				}
			}
			time.Sleep(time.Second * FINCHK)
		}
	}

	go cleanfinished()

	// the main loop; it will never exit
	for {
		select {
		case rq := <-WSInfo.RequestInfo:
			reporter(rq)
		case wr := <-WSInfo.UpdateStage:
			x := fetchifexists(wr.Key)
			x.Stage = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateSummMsg:
			x := fetchifexists(wr.Key)
			x.Summary = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateIteration:
			x := fetchifexists(wr.Key)
			x.Iteration = wr.Val
			storeunlessfinished(x)
		case ji := <-WSInfo.InsertInfo:
			storeunlessfinished(ji)
		case ipc := <-WSInfo.IPJobCount:
			ipc.Response <- ipcount(ipc.Key)
		case reset := <-WSInfo.Reset:
			cancelall(reset)
		case del := <-WSInfo.Del:
			Finished[del] = time.Now()
			delete(Allinfo, del)
		}
	}
}

// WSFetchJobInfo - get the WSJobInfo for an id via the hub
func WSFetchJobInfo(id string) WSJobInfo {
	responder := WSJIReply{Key: id, Response: make(chan WSJobInfo)}
	WSInfo.RequestInfo <- responder
	return <-responder.Response
}
