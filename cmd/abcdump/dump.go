// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	abc "github.com/saferwall/abcdis"
	"github.com/spf13/cobra"
)

func prettyPrint(buf []byte) string {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, buf, "", "\t"); err != nil {
		log.Println("JSON parse error: ", err)
		return string(buf)
	}
	return prettyJSON.String()
}

func isDirectory(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func dumpFile(filename string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("Error while reading file: %s, reason: %s", filename, err)
		return
	}

	f, err := abc.NewBytes(data, &abc.Options{})
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", filename, err)
		return
	}

	wantPool, _ := cmd.Flags().GetBool("pool")
	wantMeth, _ := cmd.Flags().GetBool("methods")
	wantClass, _ := cmd.Flags().GetBool("classes")
	wantBody, _ := cmd.Flags().GetBool("bodies")
	wantAll, _ := cmd.Flags().GetBool("all")

	if wantPool || wantAll {
		b, _ := json.Marshal(f.Pool)
		fmt.Println(prettyPrint(b))
	}
	if wantMeth || wantAll {
		b, _ := json.Marshal(f.Methods)
		fmt.Println(prettyPrint(b))
	}
	if wantClass || wantAll {
		b, _ := json.Marshal(struct {
			Instances []abc.Instance
			Classes   []abc.Class
		}{f.Instances, f.Classes})
		fmt.Println(prettyPrint(b))
	}
	if wantBody || wantAll {
		for i := range f.MethodBodies {
			ops, err := f.MethodBodies[i].Disassemble(f)
			if err != nil {
				log.Printf("method body %d: disassembly failed: %v", i, err)
				continue
			}
			b, _ := json.Marshal(ops)
			fmt.Println(prettyPrint(b))
		}
	}
}

func parse(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpFile(filePath, cmd)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, fi os.FileInfo, err error) error {
		if err == nil && !fi.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})
	for _, file := range fileList {
		dumpFile(file, cmd)
	}
}
