/*
 *    Copyright (c) 2026 The ViKey-Bridge Authors
 *
 *    This file is part of ViKey-Bridge.
 *
 *    ViKey-Bridge is free software: you can redistribute it and/or modify
 *    it under the terms of the GNU General Public License as published by
 *    the Free Software Foundation, either version 3 of the License, or
 *    (at your option) any later version.
 *
 *    ViKey-Bridge is distributed in the hope that it will be useful,
 *    but WITHOUT ANY WARRANTY; without even the implied warranty of
 *    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *    GNU General Public License for more details.
 *
 *    You should have received a copy of the GNU General Public License
 *    along with ViKey-Bridge.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	mathrand "math/rand"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/bridge"
	"github.com/vikey/vikey-bridge/dbusengine"
	"github.com/vikey/vikey-bridge/inputcontrol"
	"github.com/vikey/vikey-bridge/keymap"
	"github.com/vikey/vikey-bridge/terminal"
	"golang.org/x/net/websocket"
)

const (
	defaultSecretLength     int           = 8
	authenticationRateLimit time.Duration = time.Second / 10
	authenticationRateBurst int           = 10
	challengeLength         int           = 8
	defaultBind             string        = ":0"
	version                 string        = "0.3.0"
	prettyAppName           string        = "ViKey Bridge"
)

type challenge struct {
	message, expectedResponse string
}

func (c challenge) verify(response string) bool {
	return hmac.Equal([]byte(c.expectedResponse), []byte(response))
}

func newChallenge(secret string, unsecureRand *mathrand.Rand) challenge {
	b := make([]byte, challengeLength)
	unsecureRand.Read(b)
	message := base64.StdEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, []byte(message))
	mac.Write([]byte(secret))
	return challenge{
		message:          message,
		expectedResponse: base64.StdEncoding.EncodeToString(mac.Sum(nil)),
	}
}

func authenticationChallengeGenerator(secret string, challenges chan<- challenge) {
	unsecureRand := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	for {
		challenges <- newChallenge(secret, unsecureRand)
		time.Sleep(authenticationRateLimit)
	}
}

func secureRandBase64(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func selectController(options inputcontrol.Options) (inputcontrol.Controller, string, error) {
	if len(inputcontrol.Controllers) == 0 {
		return nil, "", errors.New("compiled without controller")
	}
	platformErrors := ""
	for _, controllerInfo := range inputcontrol.Controllers {
		controller, err := controllerInfo.Init(options)
		if err == nil {
			return controller, controllerInfo.Name, nil
		}
		var unsupported inputcontrol.UnsupportedPlatformError
		if !errors.As(err, &unsupported) {
			return nil, "", fmt.Errorf("%s controller: %w", controllerInfo.Name, err)
		}
		platformErrors += fmt.Sprintf("%s controller: %v\n", controllerInfo.Name, err)
	}
	return nil, "", errors.New("unsupported platform:\n" + platformErrors)
}

func websocketHandler(b *bridge.Bridge, challenges <-chan challenge, logger zerolog.Logger) websocket.Handler {
	return func(ws *websocket.Conn) {
		log := logger.With().Str("conn", xid.New().String()).Str("remote", ws.Request().RemoteAddr).Logger()
		var message string
		challenge := <-challenges
		if err := websocket.Message.Send(ws, challenge.message); err != nil {
			return
		}
		if err := websocket.Message.Receive(ws, &message); err != nil {
			return
		}
		if !challenge.verify(message) {
			log.Warn().Msg("authentication failed")
			return
		}
		log.Info().Msg("client connected")
		for {
			if err := websocket.Message.Receive(ws, &message); err != nil {
				log.Info().Msg("client disconnected")
				return
			}
			event, press, err := bridge.ParseCommand(message)
			if err != nil {
				log.Error().Err(err).Str("command", message).Msg("invalid command")
				return
			}
			if _, err := b.KeyEvent(event, press); err != nil {
				log.Warn().Err(err).Str("command", message).Msg("key not injected")
			}
		}
	}
}

func main() {
	terminal.SetTitle(prettyAppName)
	var bind, certFile, keyFile, secret, logLevel string
	var options inputcontrol.Options
	var showVersion, enableDBus, enableMetrics, disabled bool
	flag.BoolVar(&showVersion, "version", false, "show program's version number and exit")
	flag.StringVar(&bind, "bind", defaultBind, "bind server to [HOSTNAME]:PORT")
	flag.StringVar(&secret, "secret", "", "shared secret for client authentication")
	flag.StringVar(&certFile, "cert", "", "file containing TLS certificate")
	flag.StringVar(&keyFile, "key", "", "file containing TLS private key")
	flag.StringVar(&options.RemoteURL, "forward", "", "websocket URL of the remote keyboard target")
	flag.StringVar(&options.Origin, "origin", "", "origin sent to the remote keyboard target")
	flag.BoolVar(&enableDBus, "dbus", false, "export the key event engine on the session bus")
	flag.BoolVar(&disabled, "disabled", false, "start with translation switched off")
	flag.BoolVar(&enableMetrics, "metrics", false, "serve Prometheus metrics on /metrics")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	if showVersion {
		fmt.Println(version)
		return
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %#v\n", logLevel)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	options.Logger = logger
	options.NoLoopback = enableDBus
	if certFile != "" && keyFile == "" {
		logger.Fatal().Msg("TLS private key file missing")
	}
	if certFile == "" && keyFile != "" {
		logger.Fatal().Msg("TLS certificate file missing")
	}
	tls := certFile != "" && keyFile != ""
	if secret == "" {
		if secret, err = secureRandBase64(defaultSecretLength); err != nil {
			logger.Fatal().Err(err).Msg("generate secret")
		}
	}
	controller, controllerName, err := selectController(options)
	if err != nil {
		logger.Fatal().Err(err).Msg("no controller")
	}
	defer controller.Close()
	logger.Info().Str("controller", controllerName).Msg("controller ready")
	b, err := bridge.New(keymap.Default, controller, logger, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	b.SetEnabled(!disabled)
	if enableDBus {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			logger.Fatal().Err(err).Msg("connect session bus")
		}
		defer bus.Close()
		if err := dbusengine.NewEngine(b, logger).Serve(bus); err != nil {
			logger.Fatal().Err(err).Send()
		}
	}
	authenticationChallenges := make(chan challenge, authenticationRateBurst)
	go authenticationChallengeGenerator(secret, authenticationChallenges)
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	addr := listener.Addr().(*net.TCPAddr)
	host := ""
	bindHost, _, err := net.SplitHostPort(bind)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	for _, octet := range addr.IP {
		if octet != 0 {
			host = bindHost
			break
		}
	}
	if host == "" {
		host = findDefaultHost()
	}
	port := addr.Port
	mux := http.NewServeMux()
	mux.Handle("/ws", websocketHandler(b, authenticationChallenges,
		logger.With().Str("subsystem", "ws").Logger()))
	if enableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	domain := host
	if port != 80 && !tls || port != 443 && tls {
		domain = net.JoinHostPort(host, strconv.Itoa(port))
	}
	scheme := "ws"
	if tls {
		scheme = "wss"
	}
	url := fmt.Sprintf("%s://%s/ws#%s", scheme, domain, secret)
	fmt.Println(url)
	if qrCode, err := terminal.GenerateQRCode(url, terminal.SupportsColor(os.Stdout.Fd())); err == nil {
		fmt.Print(qrCode)
	} else {
		logger.Warn().Err(err).Msg("QR code error")
	}
	if !tls {
		fmt.Println("▌   WARNING: TLS is not enabled    ▐")
		fmt.Println("▌Don't use in an untrusted network!▐")
	}
	if tls {
		err = http.ServeTLS(listener, mux, certFile, keyFile)
	} else {
		err = http.Serve(listener, mux)
	}
	logger.Fatal().Err(err).Send()
}
