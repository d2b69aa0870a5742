// Copyright 2023 Redpanda Data, Inc.
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

// cfn-kafka-admin renders layered Kafka configuration documents into a
// CloudFormation template of topic, ACL and schema resources.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/redpanda-data/cfn-kafka-admin/kafkaadmin"
)

func main() {
	var (
		overridePath string
		outputPath   string
		format       string
	)
	pflag.StringVarP(&overridePath, "config", "c", "", "override document merged last; entity lists are not extended")
	pflag.StringVarP(&outputPath, "output", "o", "", "write the template to this file instead of stdout")
	pflag.StringVarP(&format, "format", "f", "json", "template output format, json or yaml")
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	paths := pflag.Args()
	if len(paths) == 0 {
		logger.Fatal("at least one configuration document is required")
	}

	stack, err := kafkaadmin.NewStack(paths, overridePath, kafkaadmin.WithLogger(logger))
	if err != nil {
		logger.Fatal("assembling configuration model", zap.Error(err))
	}
	template, err := stack.Render()
	if err != nil {
		logger.Fatal("rendering template", zap.Error(err))
	}

	var out []byte
	switch format {
	case "json":
		out, err = template.JSON()
	case "yaml", "yml":
		out, err = template.YAML()
	default:
		logger.Fatal("unsupported output format", zap.String("format", format))
	}
	if err != nil {
		logger.Fatal("encoding template", zap.Error(err))
	}

	if outputPath == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		logger.Fatal("writing template", zap.String("path", outputPath), zap.Error(err))
	}
}
