// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lints

import (
	appsv1 "k8s.io/api/apps/v1"
	autoscalingv1 "k8s.io/api/autoscaling/v1"
	autoscalingv2beta1 "k8s.io/api/autoscaling/v2beta1"
	autoscalingv2beta2 "k8s.io/api/autoscaling/v2beta2"
	policyv1beta1 "k8s.io/api/policy/v1beta1"
	"k8s.io/apimachinery/pkg/api/equality"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

var pdbMinReplicasSpec = reporting.Spec{Group: reporting.Configuration, Name: "pdb_min_replicas"}

// pdbMinReplicas reports pod disruption budgets that allow as many
// unavailable pods as the workload they cover runs, which blocks every
// eviction and therefore node drains.
//
// Only an integer maxUnavailable is checked.
type pdbMinReplicas struct {
	lint.Base
}

var _ lint.Lint = &pdbMinReplicas{}

func (l *pdbMinReplicas) Spec() reporting.Spec {
	return pdbMinReplicasSpec
}

func (l *pdbMinReplicas) CheckPodDisruptionBudget(pdb *policyv1beta1.PodDisruptionBudget, ctx *lint.Context) {
	maxUnavailable := pdb.Spec.MaxUnavailable
	if maxUnavailable == nil || maxUnavailable.Type != intstr.Int {
		return
	}
	pdbMinAvailable := maxUnavailable.IntVal

	deployments := matchingDeployments(pdb, ctx)
	for _, deploy := range deployments {
		replicas := ptr.Deref(deploy.Spec.Replicas, 0)
		if pdbMinAvailable >= replicas {
			ctx.Report(reporting.NewFinding(pdbMinReplicasSpec, &pdb.ObjectMeta).
				With("deploy_replicas", replicas).
				With("pdb_min_available", pdbMinAvailable))
		}
	}

	if len(deployments) == 0 {
		return
	}
	for _, minReplicas := range deploymentHPAMinReplicas(ctx) {
		if pdbMinAvailable >= minReplicas {
			ctx.Report(reporting.NewFinding(pdbMinReplicasSpec, &pdb.ObjectMeta).
				With("hpa_replicas", minReplicas).
				With("pdb_min_available", pdbMinAvailable))
		}
	}
}

// matchingDeployments returns the deployments whose selector is exactly the
// selector of pdb.
func matchingDeployments(pdb *policyv1beta1.PodDisruptionBudget, ctx *lint.Context) []*appsv1.Deployment {
	var result []*appsv1.Deployment
	for _, obj := range ctx.Objects() {
		deploy, ok := obj.(*appsv1.Deployment)
		if ok && selectorsEqual(pdb.Spec.Selector, deploy.Spec.Selector) {
			result = append(result, deploy)
		}
	}
	return result
}

func selectorsEqual(a, b *metav1.LabelSelector) bool {
	return equality.Semantic.DeepEqual(a, b)
}

// deploymentHPAMinReplicas returns the minReplicas of every autoscaler that
// scales a Deployment, in repository order.
func deploymentHPAMinReplicas(ctx *lint.Context) []int32 {
	var result []int32
	for _, obj := range ctx.Objects() {
		switch hpa := obj.(type) {
		case *autoscalingv1.HorizontalPodAutoscaler:
			if hpa.Spec.ScaleTargetRef.Kind == "Deployment" {
				result = append(result, ptr.Deref(hpa.Spec.MinReplicas, 0))
			}
		case *autoscalingv2beta1.HorizontalPodAutoscaler:
			if hpa.Spec.ScaleTargetRef.Kind == "Deployment" {
				result = append(result, ptr.Deref(hpa.Spec.MinReplicas, 0))
			}
		case *autoscalingv2beta2.HorizontalPodAutoscaler:
			if hpa.Spec.ScaleTargetRef.Kind == "Deployment" {
				result = append(result, ptr.Deref(hpa.Spec.MinReplicas, 0))
			}
		}
	}
	return result
}
