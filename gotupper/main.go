// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/azanderson/gotupper"
	"github.com/azanderson/gotupper/binutil"
	"github.com/fatih/structs"
	"github.com/gin-gonic/contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// Current Version
	version = "0.1.0"

	// kingpin app
	app = kingpin.New("gotupper", "A plotter for Tupper's self-referential formula.")
	// kingpin debug mode flag
	debug = app.Flag("debug", "Enable debug mode.").Short('v').Default("false").Bool()

	// kingpin server command
	server = app.Command("server", "Run as a plot server with a web UI.")
	// kingpin web port
	webPort = server.Flag("webPort", "Port listening for web access.").Short('w').Default("3000").Int()
	// kingpin plot library file
	file = server.Flag("file", "The file containing the plot library.").Short('f').Default("plots.csv").String()

	// kingpin plot command
	plot = app.Command("plot", "Decode one plot number and exit.")
	// kingpin plot number argument
	plotK = plot.Arg("k", "The plot number; defaults to the self-referential constant.").String()
	// kingpin PNG output file
	plotOut = plot.Flag("out", "Write the plot as PNG to this file instead of ASCII to stdout.").Short('o').String()
	// kingpin PNG scale
	plotScale = plot.Flag("scale", "Pixels per cell in PNG output.").Short('s').Default("8").Int()
	// kingpin random plot flag
	plotRandom = plot.Flag("random", "Plot a random bitmap and print its plot number.").Short('r').Bool()

	// Current activeClients
	activeClients = make(map[WebsockConn]int) // map containing clients
	// Plot library management channel
	plotManagerChannel = make(chan gotupper.PlotManager)
)

// WebsocketMessage to unmarshal JSON message from web clients
type WebsocketMessage struct {
	UpdateType string
	Plot       gotupper.PlotRecord
	Grid       []string
	Plots      []map[string]interface{}
}

// WebsockConn holds connection consists of the websocket and the client ip
type WebsockConn struct {
	websocket *websocket.Conn
	clientIP  string
}

// Broadcast a message via websocket
func Broadcast(clientMessage []byte) {
	for cs := range activeClients {
		if err := websocket.Message.Send(cs.websocket, string(clientMessage)); err != nil {
			// we could not send the message to a peer
			log.Warnf("could not send message to %v", cs.clientIP)
			log.Warn(err)
		}
	}
}

// ReqPlot handles a plot action: decode the supplied plot number
func ReqPlot(rec gotupper.PlotRecord) WebsocketMessage {
	g, err := gotupper.DecodeString(rec.K)
	if err != nil {
		log.Warn(err)
		return WebsocketMessage{UpdateType: "error", Plot: rec}
	}
	return WebsocketMessage{UpdateType: "plot", Plot: rec, Grid: g.Rows()}
}

// ReqRandom handles a random plot action: a fresh 1802-bit bitmap and
// the plot number that draws it
func ReqRandom() WebsocketMessage {
	bs, _ := binutil.GenerateNLengthRandomBinRuneSlice(gotupper.BitmapBits, 0)
	m, err := binutil.ParseBinRuneSliceToBigInt(bs)
	if err != nil {
		log.Warn(err)
		return WebsocketMessage{UpdateType: "error"}
	}
	k := m.Mul(m, big.NewInt(gotupper.GridHeight))
	g := gotupper.Decode(k)
	return WebsocketMessage{
		UpdateType: "plot",
		Plot:       gotupper.PlotRecord{Name: "random", K: k.String()},
		Grid:       g.Rows(),
	}
}

// ReqAddPlot handles a plot addition request
func ReqAddPlot(ut string, req []gotupper.PlotRecord) string {
	failed := false
	for _, r := range req {
		p, err := gotupper.NewPlot(&gotupper.PlotRecord{
			Name: r.Name,
			K:    r.K,
		})
		if err != nil {
			log.Warn(err)
			failed = true
			continue
		}

		add := gotupper.PlotManager{
			Action: gotupper.AddPlots,
			Plots:  gotupper.Plots{p},
		}
		plotManagerChannel <- add

		if add = <-plotManagerChannel; len(add.Plots) != 0 {
			m := WebsocketMessage{
				UpdateType: "add",
				Plot:       r,
				Plots:      []map[string]interface{}{}}
			clientMessage, err := json.Marshal(m)
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		} else {
			failed = true
		}
	}

	if failed {
		log.Warnf("failed %v %v", ut, req)
		return "error"
	}
	log.Infof("%v %v", ut, req)
	return ut
}

// ReqDeletePlot handles a plot deletion request
func ReqDeletePlot(ut string, req []gotupper.PlotRecord) string {
	failed := false
	for _, r := range req {
		p, err := gotupper.NewPlot(&gotupper.PlotRecord{
			Name: r.Name,
			K:    r.K,
		})
		if err != nil {
			log.Warn(err)
			failed = true
			continue
		}

		delete := gotupper.PlotManager{
			Action: gotupper.DeletePlots,
			Plots:  gotupper.Plots{p},
		}
		plotManagerChannel <- delete

		if delete = <-plotManagerChannel; len(delete.Plots) != 0 {
			m := WebsocketMessage{
				UpdateType: "delete",
				Plot:       r,
				Plots:      []map[string]interface{}{}}
			clientMessage, err := json.Marshal(m)
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		} else {
			failed = true
		}
	}
	if failed {
		log.Warnf("failed %v %v", ut, req)
		return "error"
	}
	log.Infof("%v %v", ut, req)
	return ut
}

// ReqRetrievePlot handles a plot library retrieval request
func ReqRetrievePlot() []map[string]interface{} {
	retrieve := gotupper.PlotManager{
		Action: gotupper.RetrievePlots,
		Plots:  gotupper.Plots{},
	}
	plotManagerChannel <- retrieve
	retrieve = <-plotManagerChannel
	var plotList []map[string]interface{}
	for _, p := range retrieve.Plots {
		plotList = append(plotList, structs.Map(p.InString()))
	}
	log.Debugf("retrieve: %v", plotList)
	return plotList
}

// APIPostPlot redirects the plot addition request
func APIPostPlot(c *gin.Context) {
	var json []gotupper.PlotRecord
	c.BindWith(&json, binding.JSON)
	if res := ReqAddPlot("add", json); res == "error" {
		c.String(http.StatusAlreadyReported, "The plot already exists!\n")
	} else {
		c.String(http.StatusAccepted, "Post requested!\n")
	}
}

// APIDeletePlot redirects the plot deletion request
func APIDeletePlot(c *gin.Context) {
	var json []gotupper.PlotRecord
	c.BindWith(&json, binding.JSON)
	if res := ReqDeletePlot("delete", json); res == "error" {
		c.String(http.StatusNoContent, "The plot doesn't exist!\n")
	} else {
		c.String(http.StatusAccepted, "Delete requested!\n")
	}
}

// APIGetPlots returns the plot library
func APIGetPlots(c *gin.Context) {
	c.JSON(http.StatusOK, ReqRetrievePlot())
}

// APIDecode decodes a plot number into grid rows
func APIDecode(c *gin.Context) {
	var rec gotupper.PlotRecord
	c.BindWith(&rec, binding.JSON)
	g, err := gotupper.DecodeString(rec.K)
	if err != nil {
		c.String(http.StatusBadRequest, "%v\n", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"K": rec.K, "Grid": g.Rows()})
}

// APIPlotPNG renders a plot number as a PNG image
func APIPlotPNG(c *gin.Context) {
	g, err := gotupper.DecodeString(c.DefaultQuery("k", gotupper.SelfRefK))
	if err != nil {
		c.String(http.StatusBadRequest, "%v\n", err)
		return
	}
	scale, err := strconv.Atoi(c.DefaultQuery("scale", "8"))
	if err != nil {
		c.String(http.StatusBadRequest, "%v\n", err)
		return
	}
	var buf bytes.Buffer
	if err := gotupper.WritePNG(&buf, g, scale); err != nil {
		c.String(http.StatusBadRequest, "%v\n", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// SockServer to handle messaging between clients
func SockServer(ws *websocket.Conn) {
	var err error
	// use []byte if websocket binary type is blob or arraybuffer
	var clientMessage []byte

	// cleanup on server side
	defer func() {
		if err = ws.Close(); err != nil {
			log.Warn(err)
		}
	}()

	client := ws.Request().RemoteAddr
	log.Infof("client connected: %v", client)
	clientSock := WebsockConn{ws, client}
	activeClients[clientSock] = 0
	log.Infof("number of clients connected: %v", len(activeClients))

	// for loop so the websocket stays open otherwise
	// it'll close after one Receieve and Send
	for {
		if err = websocket.Message.Receive(ws, &clientMessage); err != nil {
			// If we cannot Read then the connection is closed
			log.Infof("websocket disconnected waiting %v", err.Error())
			// remove the ws client conn from our active clients
			delete(activeClients, clientSock)
			log.Infof("number of clients still connected: %v", len(activeClients))
			return
		}

		// Parse the JSON
		m := WebsocketMessage{}
		if err = json.Unmarshal(clientMessage, &m); err != nil {
			log.Warn(err)
		}

		// Handle the command
		// Compose result struct containing proper parameters
		switch m.UpdateType {
		case "plot":
			reply := ReqPlot(m.Plot)
			clientMessage, err = json.Marshal(reply)
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		case "clear":
			clientMessage, err = json.Marshal(WebsocketMessage{UpdateType: "clear"})
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		case "random":
			reply := ReqRandom()
			clientMessage, err = json.Marshal(reply)
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		case "add":
			m.UpdateType = ReqAddPlot(m.UpdateType, []gotupper.PlotRecord{m.Plot})
		case "delete":
			m.UpdateType = ReqDeletePlot(m.UpdateType, []gotupper.PlotRecord{m.Plot})
		case "retrieve":
			plotList := ReqRetrievePlot()
			m = WebsocketMessage{
				UpdateType: "retrieval",
				Plot:       gotupper.PlotRecord{},
				Plots:      plotList}
			clientMessage, err = json.Marshal(m)
			if err != nil {
				panic(err)
			}
			Broadcast(clientMessage)
		default:
			log.Warnf("unknown UpdateType: %v", m.UpdateType)
		}
	}
}

// server mode
func runServer() int {
	// Read the plot library from a csv file
	log.Infof("loading the plot library from \"%v\"", *file)

	if _, err := os.Stat(*file); os.IsNotExist(err) {
		_, err := os.Create(*file)
		if err != nil {
			panic(err)
		}
		log.Infof("%v created.", *file)
	}
	plots := gotupper.LoadPlotsFromCSV(*file)

	// Channel for signals
	signals := make(chan os.Signal)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for {
			select {
			case cmd := <-plotManagerChannel:
				// Plot library management
				res := gotupper.Plots{}
				switch cmd.Action {
				case gotupper.AddPlots:
					for _, p := range cmd.Plots {
						if i := plots.GetIndexOf(p); i < 0 {
							*plots = append(*plots, p)
							res = append(res, p)
							// Write to file
							if err := plots.WriteToCSV(*file); err != nil {
								log.Error(err)
							}
						}
					}
				case gotupper.DeletePlots:
					for _, p := range cmd.Plots {
						if i := plots.GetIndexOf(p); i >= 0 {
							*plots = append((*plots)[:i], (*plots)[i+1:]...)
							res = append(res, p)
							// Write to file
							if err := plots.WriteToCSV(*file); err != nil {
								log.Error(err)
							}
						}
					}
				case gotupper.RetrievePlots:
					res = *plots
				}
				cmd.Plots = res
				plotManagerChannel <- cmd
			case signal := <-signals:
				// Handle SIGINT and SIGTERM.
				log.Fatalf("%v", signal)
			}
		}
	}()

	// Handle websocket and static file hosting with gin
	r := gin.Default()
	r.Use(static.Serve("/", static.LocalFile("./public", true)))
	r.GET("/ws", func(c *gin.Context) {
		handler := websocket.Handler(SockServer)
		handler.ServeHTTP(c.Writer, c.Request)
	})
	v1 := r.Group("api/v1")
	v1.GET("/plots", APIGetPlots)
	v1.POST("/plots", APIPostPlot)
	v1.DELETE("/plots", APIDeletePlot)
	v1.POST("/plot", APIDecode)
	v1.GET("/plot.png", APIPlotPNG)
	log.Infof("listening for web access on :%v", *webPort)
	if err := r.Run(":" + strconv.Itoa(*webPort)); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

// one-shot plot mode
func runPlot() int {
	var k string

	if *plotRandom {
		m := ReqRandom()
		k = m.Plot.K
		log.Infof("random plot number: %v", k)
	} else {
		k = *plotK
		if k == "" {
			k = gotupper.SelfRefK
		}
	}

	g, err := gotupper.DecodeString(k)
	if err != nil {
		log.Error(err)
		return 1
	}

	if *plotOut != "" {
		fp, err := os.Create(*plotOut)
		if err != nil {
			log.Error(err)
			return 1
		}
		defer fp.Close()
		if err := gotupper.WritePNG(fp, g, *plotScale); err != nil {
			log.Error(err)
			return 1
		}
		log.Infof("wrote %v", *plotOut)
		return 0
	}

	fmt.Print(g)
	return 0
}

func main() {
	app.Version(version)
	parse := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	switch parse {
	case server.FullCommand():
		os.Exit(runServer())
	case plot.FullCommand():
		os.Exit(runPlot())
	}
}
