package ssd1306

import "fmt"

type command byte

const (
	memoryMode          command = 0x20
	columnAddr          command = 0x21
	pageAddr            command = 0x22
	deactivateScroll    command = 0x2E
	setStartLine        command = 0x40
	setContrast         command = 0x81
	chargePump          command = 0x8D
	segRemap            command = 0xA1
	entireDisplayResume command = 0xA4
	normalDisplay       command = 0xA6
	invertDisplay       command = 0xA7
	setMultiplex        command = 0xA8
	displayOff          command = 0xAE
	displayOn           command = 0xAF
	comScanDec          command = 0xC8
	setDisplayOffset    command = 0xD3
	setDisplayClockDiv  command = 0xD5
	setPrecharge        command = 0xD9
	setComPins          command = 0xDA
	setVcomDetect       command = 0xDB
)

var commandNames = map[command]string{
	memoryMode:          "memoryMode",
	columnAddr:          "columnAddr",
	pageAddr:            "pageAddr",
	deactivateScroll:    "deactivateScroll",
	setStartLine:        "setStartLine",
	setContrast:         "setContrast",
	chargePump:          "chargePump",
	segRemap:            "segRemap",
	entireDisplayResume: "entireDisplayResume",
	normalDisplay:       "normalDisplay",
	invertDisplay:       "invertDisplay",
	setMultiplex:        "setMultiplex",
	displayOff:          "displayOff",
	displayOn:           "displayOn",
	comScanDec:          "comScanDec",
	setDisplayOffset:    "setDisplayOffset",
	setDisplayClockDiv:  "setDisplayClockDiv",
	setPrecharge:        "setPrecharge",
	setComPins:          "setComPins",
	setVcomDetect:       "setVcomDetect",
}

func (c command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("command(%#02x)", byte(c))
}
